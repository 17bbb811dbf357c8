package shape

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

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{Ray, "Ray"},
		{Plane, "Plane"},
		{Sphere, "Sphere"},
		{Box, "Box"},
		{Tag(255), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("Tag(%d).String() = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestNewRayNormalizesDirection(t *testing.T) {
	r := NewRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 5})

	if !vec3Equal(r.Direction, mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("Direction = %v, want unit vector", r.Direction)
	}
	if r.Tag() != Ray {
		t.Errorf("Tag() = %v, want Ray", r.Tag())
	}
}

func TestNewTriangleNormal(t *testing.T) {
	tri := NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})

	if !vec3Equal(tri.Normal, mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("Normal = %v, want (0,0,1)", tri.Normal)
	}

	centroid := mgl64.Vec3{1.0 / 3.0, 1.0 / 3.0, 0}
	if !vec3Equal(tri.Center(), centroid, 1e-9) {
		t.Errorf("Center() = %v, want %v", tri.Center(), centroid)
	}
}

func TestTriangleSetVerticesRecomputesNormal(t *testing.T) {
	tri := NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	tri.SetVertices(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0})

	if !vec3Equal(tri.Normal, mgl64.Vec3{0, 0, -1}, 1e-9) {
		t.Errorf("Normal = %v, want (0,0,-1) after vertex order flip", tri.Normal)
	}
}

func TestBoxCenter(t *testing.T) {
	b := NewBox(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1})
	if !vec3Equal(b.Center(), mgl64.Vec3{1, 2, 3}, 1e-9) {
		t.Errorf("Center() = %v, want (1,2,3)", b.Center())
	}
	if b.Tag() != Box {
		t.Errorf("Tag() = %v, want Box", b.Tag())
	}
}
