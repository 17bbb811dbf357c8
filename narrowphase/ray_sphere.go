package narrowphase

import (
	"github.com/geotyper/pegasus/geometry"
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func rayToSphereVector(ray *shape.RayShape, sphere *shape.SphereShape) mgl64.Vec3 {
	return sphere.Center().Sub(ray.Center())
}

func raySphereTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*raySphereCache)
	ray := a.(*shape.RayShape)
	sphere := b.(*shape.SphereShape)

	raySphere := rayToSphereVector(ray, sphere)
	if !geometry.RaySphereTest(raySphere, sphere.Radius, ray.Direction) {
		return false
	}

	cache.tMin, cache.tMax = geometry.RaySphereFactors(raySphere, sphere.Radius, ray.Direction)
	cache.inPoint = ray.Center().Add(ray.Direction.Mul(cache.tMin))
	cache.outPoint = ray.Center().Add(ray.Direction.Mul(cache.tMax))
	return true
}

func raySphereContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	cache := c.(*raySphereCache)
	sphere := b.(*shape.SphereShape)
	return cache.inPoint.Sub(sphere.Center()).Normalize()
}

func raySpherePenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*raySphereCache)
	return cache.inPoint.Sub(cache.outPoint).Len()
}
