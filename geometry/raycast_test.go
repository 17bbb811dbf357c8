package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRaySphereTest(t *testing.T) {
	t.Run("ray through center hits", func(t *testing.T) {
		raySphere := mgl64.Vec3{0, 0, 10}
		if !RaySphereTest(raySphere, 1.0, mgl64.Vec3{0, 0, 1}) {
			t.Error("expected a hit")
		}
	})

	t.Run("ray missing the sphere", func(t *testing.T) {
		raySphere := mgl64.Vec3{5, 0, 10}
		if RaySphereTest(raySphere, 1.0, mgl64.Vec3{0, 0, 1}) {
			t.Error("expected a miss")
		}
	})
}

func TestRaySphereFactors(t *testing.T) {
	raySphere := mgl64.Vec3{0, 0, 10}
	tMin, tMax := RaySphereFactors(raySphere, 1.0, mgl64.Vec3{0, 0, 1})

	if !floatEqual(tMin, 9, 1e-9) {
		t.Errorf("tMin = %v, want 9", tMin)
	}
	if !floatEqual(tMax, 11, 1e-9) {
		t.Errorf("tMax = %v, want 11", tMax)
	}
}

func TestRayAABBIntersectionFactors(t *testing.T) {
	boxMin := mgl64.Vec3{-1, -1, -1}
	boxMax := mgl64.Vec3{1, 1, 1}

	t.Run("ray through the box", func(t *testing.T) {
		tMin, tMax := RayAABBIntersectionFactors(boxMin, boxMax, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -5})
		if !RayAABBIntersection(tMin, tMax) {
			t.Error("expected a hit")
		}
		if !floatEqual(tMin, 4, 1e-9) || !floatEqual(tMax, 6, 1e-9) {
			t.Errorf("tMin,tMax = %v,%v want 4,6", tMin, tMax)
		}
	})

	t.Run("ray parallel and outside a slab misses", func(t *testing.T) {
		tMin, tMax := RayAABBIntersectionFactors(boxMin, boxMax, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{5, 0, -5})
		if RayAABBIntersection(tMin, tMax) {
			t.Error("expected a miss")
		}
	})

	t.Run("box behind the ray misses", func(t *testing.T) {
		tMin, tMax := RayAABBIntersectionFactors(boxMin, boxMax, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 5})
		if RayAABBIntersection(tMin, tMax) {
			t.Error("expected a miss when the box is behind the ray origin")
		}
	})
}
