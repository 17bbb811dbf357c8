package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vec3Equal(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a[0]-b[0]) <= tolerance &&
		math.Abs(a[1]-b[1]) <= tolerance &&
		math.Abs(a[2]-b[2]) <= tolerance
}

func floatEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestHyperPlaneSignedDistance(t *testing.T) {
	plane := NewHyperPlane(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 2, 0})

	tests := []struct {
		name string
		q    mgl64.Vec3
		want float64
	}{
		{"above", mgl64.Vec3{0, 5, 0}, 3},
		{"on plane", mgl64.Vec3{3, 2, -1}, 0},
		{"below", mgl64.Vec3{0, -1, 0}, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plane.SignedDistance(tt.q); !floatEqual(got, tt.want, 1e-9) {
				t.Errorf("SignedDistance(%v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestNewHyperPlaneFromTriangleOrientation(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{1, 0, 0}
	c := mgl64.Vec3{0, 1, 0}
	ref := mgl64.Vec3{0, 0, -1}

	plane := NewHyperPlaneFromTriangle(a, b, c, &ref)

	if d := plane.SignedDistance(ref); d > 0 {
		t.Errorf("reference point should have non-positive signed distance, got %v", d)
	}
	if plane.Normal.Z() <= 0 {
		t.Errorf("expected normal to point away from the reference (+z side), got %v", plane.Normal)
	}
}

func TestHyperPlaneRayIntersection(t *testing.T) {
	plane := NewHyperPlane(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 5})

	t.Run("hits from below", func(t *testing.T) {
		point, ok := plane.RayIntersection(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 0})
		if !ok {
			t.Fatal("expected a hit")
		}
		if !vec3Equal(point, mgl64.Vec3{0, 0, 5}, 1e-9) {
			t.Errorf("got %v, want (0,0,5)", point)
		}
	})

	t.Run("behind the ray misses", func(t *testing.T) {
		_, ok := plane.RayIntersection(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 10})
		if ok {
			t.Error("expected a miss when the plane is behind the ray origin")
		}
	})

	t.Run("parallel ray misses", func(t *testing.T) {
		_, ok := plane.RayIntersection(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 0})
		if ok {
			t.Error("expected a miss for a ray parallel to the plane")
		}
	})
}
