package narrowphase

import (
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func sphereSphereTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*sphereSphereCache)
	sphereA := a.(*shape.SphereShape)
	sphereB := b.(*shape.SphereShape)

	cache.baVector = sphereA.Center().Sub(sphereB.Center())
	radiusSum := sphereA.Radius + sphereB.Radius

	hit := radiusSum*radiusSum > cache.baVector.Dot(cache.baVector)
	if hit {
		cache.penetration = radiusSum - cache.baVector.Len()
	}
	return hit
}

func sphereSphereContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	return c.(*sphereSphereCache).baVector.Normalize()
}

func sphereSpherePenetration(a, b shape.Shape, c interface{}) float64 {
	return c.(*sphereSphereCache).penetration
}
