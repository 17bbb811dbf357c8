package geometry

import "github.com/go-gl/mathgl/mgl64"

// RaySphereTest reports whether a ray hits a sphere of the given
// radius, given raySphere = sphereCenter - rayOrigin and the ray's
// (normalized) direction.
func RaySphereTest(raySphere mgl64.Vec3, radius float64, direction mgl64.Vec3) bool {
	tCenter := raySphere.Dot(direction)
	distanceSq := raySphere.Dot(raySphere) - tCenter*tCenter
	return radius*radius-distanceSq >= 0
}

// RaySphereFactors returns the near and far intersection factors along
// direction for a ray against a sphere, assuming RaySphereTest already
// reported a hit. tMin is the entry point, tMax the exit point.
func RaySphereFactors(raySphere mgl64.Vec3, radius float64, direction mgl64.Vec3) (tMin, tMax float64) {
	tCenter := raySphere.Dot(direction)
	distanceSq := raySphere.Dot(raySphere) - tCenter*tCenter
	half := sqrt(radius*radius - distanceSq)
	return tCenter - half, tCenter + half
}

// RayAABBIntersectionFactors runs the standard slab test for a ray
// against an axis-aligned box given in the ray's own frame (boxMin,
// boxMax relative to the same origin as rayOrigin). Division by a zero
// direction component relies on IEEE infinity arithmetic to produce
// the correct +/-Inf bounds, matching the behavior of a ray parallel to
// a slab.
func RayAABBIntersectionFactors(boxMin, boxMax, direction, rayOrigin mgl64.Vec3) (tMin, tMax float64) {
	tMin = negInf
	tMax = posInf

	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / direction[axis]
		t1 := (boxMin[axis] - rayOrigin[axis]) * invD
		t2 := (boxMax[axis] - rayOrigin[axis]) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
	}

	return tMin, tMax
}

// RayAABBIntersection turns a pair of slab factors into a hit/miss
// decision: the AABB must be ahead of the ray origin (tMax > 0) and
// the slab intervals must overlap (tMin < tMax).
func RayAABBIntersection(tMin, tMax float64) bool {
	return tMax > 0 && tMin < tMax
}
