// Package shape defines the tagged collision-shape variants consumed
// by the narrowphase engines and the gjk support routines. Each
// variant carries its own geometric data in world space; nothing here
// performs intersection math.
package shape

import "github.com/go-gl/mathgl/mgl64"

// Tag identifies a shape's concrete variant for dispatch purposes.
type Tag uint8

const (
	Ray Tag = iota
	Plane
	Triangle
	Sphere
	Cone
	Cylinder
	Capsule
	Box
)

func (t Tag) String() string {
	switch t {
	case Ray:
		return "Ray"
	case Plane:
		return "Plane"
	case Triangle:
		return "Triangle"
	case Sphere:
		return "Sphere"
	case Cone:
		return "Cone"
	case Cylinder:
		return "Cylinder"
	case Capsule:
		return "Capsule"
	case Box:
		return "Box"
	default:
		return "Unknown"
	}
}

// Shape is implemented by every shape variant. CenterOfMass is the
// point every engine measures offsets from.
type Shape interface {
	Tag() Tag
	Center() mgl64.Vec3
}

type base struct {
	CenterOfMass mgl64.Vec3
}

func (b base) Center() mgl64.Vec3 { return b.CenterOfMass }

// RayShape is a half-line: an origin (CenterOfMass) and a normalized
// direction.
type RayShape struct {
	base
	Direction mgl64.Vec3
}

// NewRay builds a ray with a normalized direction.
func NewRay(origin, direction mgl64.Vec3) *RayShape {
	return &RayShape{base{origin}, direction.Normalize()}
}

func (r *RayShape) Tag() Tag { return Ray }

// PlaneShape is an infinite plane: a point on the plane (CenterOfMass)
// and a normalized normal.
type PlaneShape struct {
	base
	Normal mgl64.Vec3
}

// NewPlane builds a plane with a normalized normal.
func NewPlane(point, normal mgl64.Vec3) *PlaneShape {
	return &PlaneShape{base{point}, normal.Normalize()}
}

func (p *PlaneShape) Tag() Tag { return Plane }

// SphereShape is a ball of constant radius around CenterOfMass.
type SphereShape struct {
	base
	Radius float64
}

// NewSphere builds a sphere.
func NewSphere(center mgl64.Vec3, radius float64) *SphereShape {
	return &SphereShape{base{center}, radius}
}

func (s *SphereShape) Tag() Tag { return Sphere }

// BoxShape is an oriented box described by its center and three
// half-axis vectors. The axes need not be orthogonal or axis-aligned;
// every engine treats them as an arbitrary parallelepiped basis.
type BoxShape struct {
	base
	I, J, K mgl64.Vec3
}

// NewBox builds a box from its center and half-axis vectors.
func NewBox(center, i, j, k mgl64.Vec3) *BoxShape {
	return &BoxShape{base{center}, i, j, k}
}

func (b *BoxShape) Tag() Tag { return Box }

// TriangleShape is a flat triangle with a cached outward normal,
// recomputed whenever the vertices are set.
type TriangleShape struct {
	base
	A, B, C mgl64.Vec3
	Normal  mgl64.Vec3
}

// NewTriangle builds a triangle and computes its normal.
func NewTriangle(a, b, c mgl64.Vec3) *TriangleShape {
	t := &TriangleShape{A: a, B: b, C: c}
	t.CenterOfMass = a.Add(b).Add(c).Mul(1.0 / 3.0)
	t.recomputeNormal()
	return t
}

// SetVertices replaces the triangle's vertices and recomputes its
// center of mass and normal.
func (t *TriangleShape) SetVertices(a, b, c mgl64.Vec3) {
	t.A, t.B, t.C = a, b, c
	t.CenterOfMass = a.Add(b).Add(c).Mul(1.0 / 3.0)
	t.recomputeNormal()
}

func (t *TriangleShape) recomputeNormal() {
	t.Normal = t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

func (t *TriangleShape) Tag() Tag { return Triangle }

// ConeShape is a right circular cone with its apex offset from
// CenterOfMass along Axis, base radius Radius.
type ConeShape struct {
	base
	Axis   mgl64.Vec3
	Radius float64
}

// NewCone builds a cone. Axis points from the base center to the apex.
func NewCone(center, axis mgl64.Vec3, radius float64) *ConeShape {
	return &ConeShape{base{center}, axis, radius}
}

func (c *ConeShape) Tag() Tag { return Cone }

// CylinderShape is a right circular cylinder with HalfHeight pointing
// from CenterOfMass to one end cap, radius Radius.
type CylinderShape struct {
	base
	HalfHeight mgl64.Vec3
	Radius     float64
}

// NewCylinder builds a cylinder.
func NewCylinder(center, halfHeight mgl64.Vec3, radius float64) *CylinderShape {
	return &CylinderShape{base{center}, halfHeight, radius}
}

func (c *CylinderShape) Tag() Tag { return Cylinder }

// CapsuleShape is a cylinder capped with two hemispheres, HalfHeight
// pointing from CenterOfMass to one hemisphere's center, radius
// Radius.
type CapsuleShape struct {
	base
	HalfHeight mgl64.Vec3
	Radius     float64
}

// NewCapsule builds a capsule.
func NewCapsule(center, halfHeight mgl64.Vec3, radius float64) *CapsuleShape {
	return &CapsuleShape{base{center}, halfHeight, radius}
}

func (c *CapsuleShape) Tag() Tag { return Capsule }
