package narrowphase

import (
	"sort"

	"github.com/geotyper/pegasus/geometry"
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func planeBoxTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*planeBoxCache)
	plane := a.(*shape.PlaneShape)
	box := b.(*shape.BoxShape)

	vertices := geometry.BoxVertices(box.Center(), box.I, box.J, box.K)
	planeDistance := plane.Normal.Dot(plane.Center())

	for i, v := range vertices {
		cache.penetrations[i] = planeDistance - v.Dot(plane.Normal)
	}
	sort.Float64s(cache.penetrations[:])

	return cache.penetrations[7] >= 0
}

func planeBoxContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	plane := a.(*shape.PlaneShape)
	box := b.(*shape.BoxShape)

	boxFaces := [6]mgl64.Vec3{box.I, box.J, box.K, box.I.Mul(-1), box.J.Mul(-1), box.K.Mul(-1)}

	minIndex := 0
	minDistance := boxFaces[0].Dot(plane.Normal)
	for i := 1; i < 6; i++ {
		d := boxFaces[i].Dot(plane.Normal)
		if d < minDistance {
			minDistance = d
			minIndex = i
		}
	}

	return boxFaces[minIndex].Normalize()
}

func planeBoxPenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*planeBoxCache)
	return cache.penetrations[7]
}
