package narrowphase

import (
	"testing"

	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func TestRayRayIntersectingLines(t *testing.T) {
	a := shape.NewRay(mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 0, 0})
	b := shape.NewRay(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{0, 1, 0})

	cache := &rayRayCache{}
	if !rayRayTest(a, b, cache) {
		t.Fatal("expected crossing lines to hit")
	}
	if !vec3Equal(cache.aClosestApproach, mgl64.Vec3{0, 0, 0}, 1e-9) {
		t.Errorf("aClosestApproach = %v, want origin", cache.aClosestApproach)
	}
}

func TestRayRayParallelLinesMiss(t *testing.T) {
	a := shape.NewRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0})
	b := shape.NewRay(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0})

	if rayRayTest(a, b, &rayRayCache{}) {
		t.Fatal("expected parallel, non-coincident lines to miss")
	}
}

// When the sphere's center exactly coincides with the box's center,
// the usual per-axis clamp loop can't pick a direction (boxSphereVector
// is zero), so the engine falls back to the box's +i face center and
// reseeds the clamp vector with the raw i-axis.
func TestSphereBoxDegenerateCenters(t *testing.T) {
	sphere := shape.NewSphere(mgl64.Vec3{0, 0, 0}, 2)
	box := shape.NewBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1})

	cache := &sphereBoxCache{}
	if !sphereBoxTest(sphere, box, cache) {
		t.Fatal("expected a sphere enclosing the box's center to hit")
	}
	if !vec3Equal(cache.boxContactPoint, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("boxContactPoint = %v, want the +i face center (1,0,0)", cache.boxContactPoint)
	}

	depth := sphereBoxPenetration(sphere, box, cache)
	if !floatEqual(depth, 1, 1e-9) {
		t.Errorf("penetration = %v, want 1 (sphere radius minus distance to the fallback contact point)", depth)
	}
}

// A box rotated 45 degrees around the shared vertical axis still needs
// to be tested against the other box's face normals and the nine
// cross-product axes, not just its own.
func TestBoxBoxRotatedSeparation(t *testing.T) {
	sqrt2 := 1.4142135623730951
	diag := mgl64.Vec3{sqrt2 / 2, 0, sqrt2 / 2}
	antiDiag := mgl64.Vec3{sqrt2 / 2, 0, -sqrt2 / 2}

	a := shape.NewBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1})
	b := shape.NewBox(mgl64.Vec3{4, 0, 0}, diag, mgl64.Vec3{0, 1, 0}, antiDiag)

	if boxBoxTest(a, b, &boxBoxCache{}) {
		t.Fatal("expected the rotated, distant box pair to separate")
	}
}
