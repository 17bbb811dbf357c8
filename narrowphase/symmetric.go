package narrowphase

// The six pairs below reuse a canonical-orientation engine by swapping
// the two shapes and (usually) negating the resulting normal. Three
// pairs break that pattern because their canonical call's normal
// isn't a simple negation of "whose surface the caller cares about":
// Box/Ray hands back the ray's own direction, Box/Plane hands back the
// plane's own normal, and Box/Sphere hands back the sphere engine's
// sphereContactNormal untouched.

import (
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func planeRayTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*planeRayCache)
	return rayPlaneTest(b, a, &cache.rp)
}

func planeRayContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	return b.(*shape.RayShape).Direction.Mul(-1)
}

func planeRayPenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*planeRayCache)
	return rayPlanePenetration(b, a, &cache.rp)
}

func sphereRayTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*sphereRayCache)
	return raySphereTest(b, a, &cache.rs)
}

func sphereRayContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	cache := c.(*sphereRayCache)
	return raySphereContactNormal(b, a, &cache.rs).Mul(-1)
}

func sphereRayPenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*sphereRayCache)
	return raySpherePenetration(b, a, &cache.rs)
}

func boxRayTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*boxRayCache)
	return rayBoxTest(b, a, &cache.rb)
}

func boxRayContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	cache := c.(*boxRayCache)
	rayBoxContactNormal(b, a, &cache.rb)
	return b.(*shape.RayShape).Direction
}

func boxRayPenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*boxRayCache)
	return rayBoxPenetration(b, a, &cache.rb)
}

func spherePlaneTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*spherePlaneCache)
	return planeSphereTest(b, a, &cache.ps)
}

func spherePlaneContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	return b.(*shape.PlaneShape).Normal
}

func spherePlanePenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*spherePlaneCache)
	return planeSpherePenetration(b, a, &cache.ps)
}

func boxPlaneTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*boxPlaneCache)
	return planeBoxTest(b, a, &cache.pb)
}

func boxPlaneContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	return b.(*shape.PlaneShape).Normal
}

func boxPlanePenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*boxPlaneCache)
	return planeBoxPenetration(b, a, &cache.pb)
}

func boxSphereTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*boxSphereCache)
	return sphereBoxTest(b, a, &cache.sb)
}

func boxSphereContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	cache := c.(*boxSphereCache)
	sphereBoxContactNormal(b, a, &cache.sb)
	return cache.sb.sphereContactNormal
}

func boxSpherePenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*boxSphereCache)
	return sphereBoxPenetration(b, a, &cache.sb)
}
