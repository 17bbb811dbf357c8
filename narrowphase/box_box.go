package narrowphase

import (
	"github.com/geotyper/pegasus/geometry"
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func projectExtent(vertices [8]mgl64.Vec3, axis mgl64.Vec3) (min, max float64) {
	min = vertices[0].Dot(axis)
	max = min
	for i := 1; i < 8; i++ {
		p := vertices[i].Dot(axis)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}

func separatedAlong(aVertices, bVertices [8]mgl64.Vec3, axis mgl64.Vec3) bool {
	aMin, aMax := projectExtent(aVertices, axis)
	bMin, bMax := projectExtent(bVertices, axis)
	return aMax < bMin || bMax < aMin
}

// boxBoxTest runs the Separating Axis Theorem over each box's three
// face normals and the nine cross products between them (fifteen
// candidate axes). Cross products are used raw, not normalized: a
// parallel pair of axes yields a zero cross product whose projections
// are all zero on both boxes, which can never separate, so it's
// skipped without an explicit epsilon check. A near-zero but non-zero
// cross product is tested like any other axis.
func boxBoxTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*boxBoxCache)
	boxA := a.(*shape.BoxShape)
	boxB := b.(*shape.BoxShape)

	cache.aBoxVertices = geometry.BoxVertices(boxA.Center(), boxA.I, boxA.J, boxA.K)
	cache.bBoxVertices = geometry.BoxVertices(boxB.Center(), boxB.I, boxB.J, boxB.K)

	cache.aBoxAxes = [6]mgl64.Vec3{boxA.I, boxA.J, boxA.K, boxA.I.Mul(-1), boxA.J.Mul(-1), boxA.K.Mul(-1)}
	cache.bBoxAxes = [6]mgl64.Vec3{boxB.I, boxB.J, boxB.K, boxB.I.Mul(-1), boxB.J.Mul(-1), boxB.K.Mul(-1)}

	for i := 0; i < 6; i++ {
		cache.aBoxFaces[i] = cache.aBoxAxes[i].Add(boxA.Center())
		cache.bBoxFaces[i] = cache.bBoxAxes[i].Add(boxB.Center())
	}

	cache.separatingAxes = cache.separatingAxes[:0]
	cache.separatingAxes = append(cache.separatingAxes,
		boxA.I.Normalize(), boxA.J.Normalize(), boxA.K.Normalize(),
		boxB.I.Normalize(), boxB.J.Normalize(), boxB.K.Normalize())

	aLocalAxes := [3]mgl64.Vec3{boxA.I, boxA.J, boxA.K}
	bLocalAxes := [3]mgl64.Vec3{boxB.I, boxB.J, boxB.K}
	for _, aAxis := range aLocalAxes {
		for _, bAxis := range bLocalAxes {
			cache.separatingAxes = append(cache.separatingAxes, aAxis.Cross(bAxis))
		}
	}

	for _, axis := range cache.separatingAxes {
		if separatedAlong(cache.aBoxVertices, cache.bBoxVertices, axis) {
			return false
		}
	}

	return true
}

func boxBoxContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	cache := c.(*boxBoxCache)
	boxA := a.(*shape.BoxShape)

	minIndex := 0
	minDistance := boxA.Center().Sub(cache.bBoxFaces[0]).Len()
	for i := 1; i < 6; i++ {
		d := boxA.Center().Sub(cache.bBoxFaces[i]).Len()
		if d < minDistance {
			minDistance = d
			minIndex = i
		}
	}

	cache.contactNormal = cache.bBoxAxes[minIndex].Normalize()
	return cache.contactNormal
}

func boxBoxPenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*boxBoxCache)
	aMin, _ := projectExtent(cache.aBoxVertices, cache.contactNormal)
	_, bMax := projectExtent(cache.bBoxVertices, cache.contactNormal)
	cache.penetration = bMax - aMin
	return cache.penetration
}
