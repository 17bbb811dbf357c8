// Package gjk provides the support-point and simplex-reduction
// primitives an outer Gilbert-Johnson-Keerthi driver is built from:
// Minkowski-difference support queries and Voronoi-region simplex
// reduction for simplex sizes 2 (line), 3 (triangle) and 4
// (tetrahedron). Driving the iteration to convergence, and refining a
// colliding simplex into a contact manifold (EPA), are left to an
// external caller.
package gjk

import (
	"github.com/geotyper/pegasus/geometry"
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Support returns the point on s farthest along direction. Only
// Sphere and Box shapes participate in GJK; Support panics for any
// other shape tag.
func Support(s shape.Shape, direction mgl64.Vec3) mgl64.Vec3 {
	switch v := s.(type) {
	case *shape.SphereShape:
		return sphereSupport(v, direction)
	case *shape.BoxShape:
		return boxSupport(v, direction)
	default:
		panic("gjk: unsupported shape for Support: " + s.Tag().String())
	}
}

// MinkowskiSupport returns the support point of the Minkowski
// difference a - b in the given direction: the fundamental query that
// lets GJK operate on any pair of convex shapes through only their
// Support functions.
func MinkowskiSupport(a, b shape.Shape, direction mgl64.Vec3) mgl64.Vec3 {
	return Support(a, direction).Sub(Support(b, direction.Mul(-1)))
}

// sphereSupport casts a ray along direction from a point outside the
// sphere, radius plus one unit behind its center, and takes the far
// intersection factor. This indirection (rather than the
// closed-form center + direction*radius) is what the box support
// below also does, so both shapes share the same ray/shape-engine code
// path rather than each having a bespoke formula.
func sphereSupport(sphere *shape.SphereShape, direction mgl64.Vec3) mgl64.Vec3 {
	dir := direction.Normalize()
	origin := sphere.Center().Sub(dir.Mul(sphere.Radius + 1))
	raySphere := sphere.Center().Sub(origin)

	_, tMax := geometry.RaySphereFactors(raySphere, sphere.Radius, dir)
	return origin.Add(dir.Mul(tMax))
}

// boxSupport casts a ray from center-direction (offset by exactly one
// unit, not scaled by the box's extent) back through the box's local
// axis-aligned bounding box and takes the far slab factor. The offset
// is deliberately unscaled, unlike the sphere case above, so the
// origin lies inside any box that extends more than one unit from its
// center along direction; the slab test's far factor is the exit point
// along direction whether the origin is inside or outside the box.
func boxSupport(box *shape.BoxShape, direction mgl64.Vec3) mgl64.Vec3 {
	dir := direction.Normalize()
	origin := box.Center().Sub(dir)

	modelMatrix := geometry.Mat3FromColumns(box.I.Normalize(), box.J.Normalize(), box.K.Normalize())
	inverse := modelMatrix.Inv()

	localDirection := inverse.Mul3x1(dir)
	localOrigin := inverse.Mul3x1(origin.Sub(box.Center()))
	localMin, localMax := geometry.AabbExtremalVertices(box.I, box.J, box.K)

	_, tMax := geometry.RayAABBIntersectionFactors(localMin, localMax, localDirection, localOrigin)
	return origin.Add(dir.Mul(tMax))
}
