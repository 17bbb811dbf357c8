package gjk

import (
	"github.com/geotyper/pegasus/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// tetrahedronFaces lists, for each of a tetrahedron's four faces, the
// three vertex indices forming it and the index of the opposite vertex
// used as that face's orientation reference.
var tetrahedronFaces = [4][4]int{
	{0, 1, 2, 3},
	{0, 1, 3, 2},
	{0, 2, 3, 1},
	{1, 2, 3, 0},
}

// TetrahedronPointIntersection reports whether point lies inside (or
// on) the tetrahedron formed by vertices. Each face is built with its
// opposite vertex as the orientation reference so the face's normal
// points outward; point is inside only if its signed distance to every
// face is non-positive.
func TetrahedronPointIntersection(vertices [4]mgl64.Vec3, point mgl64.Vec3) bool {
	for _, f := range tetrahedronFaces {
		ref := vertices[f[3]]
		plane := geometry.NewHyperPlaneFromTriangle(vertices[f[0]], vertices[f[1]], vertices[f[2]], &ref)
		if plane.SignedDistance(point) > 0 {
			return false
		}
	}
	return true
}
