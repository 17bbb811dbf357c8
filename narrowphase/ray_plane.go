package narrowphase

import (
	"github.com/geotyper/pegasus/geometry"
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func rayPlaneTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*rayPlaneCache)
	ray := a.(*shape.RayShape)
	plane := b.(*shape.PlaneShape)

	hyperplane := geometry.NewHyperPlane(plane.Normal, plane.Center())
	point, hit := hyperplane.RayIntersection(ray.Direction, ray.Center())
	cache.contactPoint = point
	return hit
}

// rayPlaneContactNormal returns the ray's own direction: the plane is
// infinitely thin, so the only meaningful "contact normal" a ray
// carries into a plane intersection is the direction it travelled.
func rayPlaneContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	return a.(*shape.RayShape).Direction
}

func rayPlanePenetration(a, b shape.Shape, c interface{}) float64 {
	return maxPenetration
}
