package narrowphase

import (
	"github.com/geotyper/pegasus/geometry"
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func vec3Exact(a, b mgl64.Vec3) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func sphereBoxTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*sphereBoxCache)
	sphere := a.(*shape.SphereShape)
	box := b.(*shape.BoxShape)

	cache.boxVertices = geometry.BoxVertices(box.Center(), box.I, box.J, box.K)
	cache.boxAxes = [6]mgl64.Vec3{box.I, box.J, box.K, box.I.Mul(-1), box.J.Mul(-1), box.K.Mul(-1)}

	for i := 0; i < 6; i++ {
		cache.boxFaceCenterVertices[i] = cache.boxAxes[i].Add(box.Center())
		cache.boxNormals[i] = cache.boxAxes[i].Normalize()
	}

	cache.boxSphereVector = sphere.Center().Sub(box.Center())

	if cache.boxSphereVector.Dot(cache.boxSphereVector) != 0 {
		cache.boxContactPoint = box.Center()
		for i := 0; i < 3; i++ {
			d := cache.boxSphereVector.Dot(cache.boxNormals[i])
			halfLen := cache.boxAxes[i].Len()
			d = clamp(d, -halfLen, halfLen)
			cache.boxContactPoint = cache.boxContactPoint.Add(cache.boxNormals[i].Mul(d))
		}
	} else {
		cache.boxContactPoint = cache.boxFaceCenterVertices[0]
		cache.boxSphereVector = cache.boxAxes[0]
	}

	cache.sphereContactNormal = cache.boxContactPoint.Sub(sphere.Center()).Normalize()
	cache.sphereContactPoint = cache.sphereContactNormal.Mul(sphere.Radius).Add(sphere.Center())

	diff := sphere.Center().Sub(cache.boxContactPoint)
	return diff.Dot(diff) <= sphere.Radius*sphere.Radius
}

func sphereBoxContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	cache := c.(*sphereBoxCache)
	sphere := a.(*shape.SphereShape)
	box := b.(*shape.BoxShape)

	minIndex := 0
	minDistance := cache.boxFaceCenterVertices[0].Sub(sphere.Center()).Len()
	for i := 1; i < 6; i++ {
		d := cache.boxFaceCenterVertices[i].Sub(sphere.Center()).Len()
		if d < minDistance {
			minDistance = d
			minIndex = i
		}
		cache.boxFaceDistances[i] = d
	}
	cache.boxFaceDistances[0] = cache.boxFaceCenterVertices[0].Sub(sphere.Center()).Len()
	cache.boxContactNormal = cache.boxNormals[minIndex]

	if vec3Exact(cache.boxContactPoint, sphere.Center()) {
		dir := cache.boxSphereVector.Normalize()
		cache.boxContactPoint = box.Center().Add(dir.Mul(cache.boxAxes[minIndex].Dot(dir)))
		cache.sphereContactNormal = cache.boxContactPoint.Sub(sphere.Center()).Normalize()
		cache.sphereContactPoint = cache.sphereContactNormal.Mul(sphere.Radius).Add(sphere.Center())
	}

	return cache.boxContactNormal
}

func sphereBoxPenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*sphereBoxCache)
	box := b.(*shape.BoxShape)

	if vec3Exact(cache.boxContactPoint, box.Center()) {
		return cache.boxAxes[0].Len()
	}
	return cache.sphereContactPoint.Sub(cache.boxContactPoint).Len()
}
