package geometry

import "github.com/go-gl/mathgl/mgl64"

// BoxVertices enumerates the 8 corners of an oriented box given its
// center and three half-axis vectors i, j, k (not required to be
// mutually orthogonal or axis-aligned). The ordering is fixed: index
// bit 0 selects the sign of k, bit 1 the sign of j, bit 2 the sign of
// i, so vertex 0 is center-i-j-k and vertex 7 is center+i+j+k.
func BoxVertices(center, i, j, k mgl64.Vec3) [8]mgl64.Vec3 {
	var vertices [8]mgl64.Vec3
	signs := [2]float64{-1, 1}
	idx := 0
	for _, si := range signs {
		for _, sj := range signs {
			for _, sk := range signs {
				vertices[idx] = center.Add(i.Mul(si)).Add(j.Mul(sj)).Add(k.Mul(sk))
				idx++
			}
		}
	}
	return vertices
}

// AabbExtremalVertices returns the min and max corners, in the box's
// own local frame, of the axis-aligned bounding box enclosing an
// oriented box with half-axes i, j, k. Each component of the half-axes
// contributes its absolute value regardless of sign, since the box's
// own 8 vertices are formed by every sign combination of i, j, k.
func AabbExtremalVertices(i, j, k mgl64.Vec3) (min, max mgl64.Vec3) {
	extent := absVec3(i).Add(absVec3(j)).Add(absVec3(k))
	return extent.Mul(-1), extent
}

func absVec3(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{absFloat(v[0]), absFloat(v[1]), absFloat(v[2])}
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Mat3FromColumns builds a 3x3 matrix whose columns are c0, c1, c2.
// Useful for constructing a box's local-to-world rotation from its
// (normalized) half-axis vectors.
func Mat3FromColumns(c0, c1, c2 mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3{
		c0[0], c0[1], c0[2],
		c1[0], c1[1], c1[2],
		c2[0], c2[1], c2[2],
	}
}
