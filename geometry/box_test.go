package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBoxVertices(t *testing.T) {
	center := mgl64.Vec3{1, 2, 3}
	i := mgl64.Vec3{1, 0, 0}
	j := mgl64.Vec3{0, 2, 0}
	k := mgl64.Vec3{0, 0, 3}

	vertices := BoxVertices(center, i, j, k)

	if len(vertices) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(vertices))
	}

	if !vec3Equal(vertices[0], mgl64.Vec3{0, 0, 0}, 1e-9) {
		t.Errorf("vertex 0 = %v, want (0,0,0)", vertices[0])
	}
	if !vec3Equal(vertices[7], mgl64.Vec3{2, 4, 6}, 1e-9) {
		t.Errorf("vertex 7 = %v, want (2,4,6)", vertices[7])
	}

	seen := map[[3]float64]bool{}
	for _, v := range vertices {
		seen[[3]float64{v[0], v[1], v[2]}] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct vertices, got %d", len(seen))
	}
}

func TestAabbExtremalVertices(t *testing.T) {
	i := mgl64.Vec3{2, 0, 0}
	j := mgl64.Vec3{0, -3, 0}
	k := mgl64.Vec3{1, 1, 1}

	min, max := AabbExtremalVertices(i, j, k)

	want := mgl64.Vec3{3, 4, 1}
	if !vec3Equal(max, want, 1e-9) {
		t.Errorf("max = %v, want %v", max, want)
	}
	if !vec3Equal(min, want.Mul(-1), 1e-9) {
		t.Errorf("min = %v, want %v", min, want.Mul(-1))
	}
}
