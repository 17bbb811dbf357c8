// Package geometry provides the coordinate-free math primitives the
// narrow-phase engines are built on: hyperplanes, box-vertex
// enumeration, local-frame AABBs, and the analytic ray/sphere and
// ray/AABB kernels. Nothing in this package knows about shape tags or
// dispatch; it only deals in mgl64.Vec3 and mgl64.Mat3 values.
package geometry

import "github.com/go-gl/mathgl/mgl64"

// HyperPlane is an oriented plane in R^3: a unit normal and any point
// lying on the plane. Signed distance is positive on the side the
// normal points toward.
type HyperPlane struct {
	Normal mgl64.Vec3
	Point  mgl64.Vec3
}

// NewHyperPlane builds a plane from a normal (normalized on
// construction) and a point known to lie on it.
func NewHyperPlane(normal, point mgl64.Vec3) HyperPlane {
	return HyperPlane{Normal: normal.Normalize(), Point: point}
}

// NewHyperPlaneFromTriangle builds the plane through three points. The
// normal is cross(b-a, c-a), normalized. When orientationRef is
// non-nil, the normal is flipped if needed so that orientationRef has
// a non-positive signed distance, i.e. the normal points away from
// orientationRef. This is how the tetrahedron point-containment test
// builds each of its four faces, using the vertex opposite the face as
// the reference.
func NewHyperPlaneFromTriangle(a, b, c mgl64.Vec3, orientationRef *mgl64.Vec3) HyperPlane {
	normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
	plane := HyperPlane{Normal: normal, Point: a}
	if orientationRef != nil && plane.SignedDistance(*orientationRef) > 0 {
		plane.Normal = plane.Normal.Mul(-1)
	}
	return plane
}

// SignedDistance returns normal . (q - point). Positive on the side
// the normal points toward, zero on the plane, negative on the other
// side.
func (p HyperPlane) SignedDistance(q mgl64.Vec3) float64 {
	return p.Normal.Dot(q.Sub(p.Point))
}

// rayPlaneEpsilon is the minimum |normal . direction| below which a
// ray is treated as parallel to the plane.
const rayPlaneEpsilon = 1e-12

// RayIntersection finds where the ray (origin, direction) crosses the
// plane. It reports false when the ray is parallel to the plane or
// when the crossing lies behind the origin (t < 0).
func (p HyperPlane) RayIntersection(direction, origin mgl64.Vec3) (mgl64.Vec3, bool) {
	s := p.Normal.Dot(direction)
	if s > -rayPlaneEpsilon && s < rayPlaneEpsilon {
		return mgl64.Vec3{}, false
	}

	t := p.Normal.Dot(p.Point.Sub(origin)) / s
	if t < 0 {
		return mgl64.Vec3{}, false
	}

	return origin.Add(direction.Mul(t)), true
}
