package narrowphase

import (
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func planeSphereTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*planeSphereCache)
	plane := a.(*shape.PlaneShape)
	sphere := b.(*shape.SphereShape)

	cache.penetration = sphere.Radius - (sphere.Center().Dot(plane.Normal) - plane.Center().Dot(plane.Normal))
	return cache.penetration >= 0
}

func planeSphereContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	return a.(*shape.PlaneShape).Normal.Mul(-1)
}

func planeSpherePenetration(a, b shape.Shape, c interface{}) float64 {
	return c.(*planeSphereCache).penetration
}
