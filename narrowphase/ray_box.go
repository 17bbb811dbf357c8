package narrowphase

import (
	"github.com/geotyper/pegasus/geometry"
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func rayBoxTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*rayBoxCache)
	ray := a.(*shape.RayShape)
	box := b.(*shape.BoxShape)

	cache.boxModelMatrix = geometry.Mat3FromColumns(box.I.Normalize(), box.J.Normalize(), box.K.Normalize())
	cache.inversebox = cache.boxModelMatrix.Inv()

	cache.localDirection = cache.inversebox.Mul3x1(ray.Direction)
	cache.localOrigin = cache.inversebox.Mul3x1(ray.Center().Sub(box.Center()))

	cache.localAabbMin, cache.localAabbMax = geometry.AabbExtremalVertices(box.I, box.J, box.K)

	cache.tMin, cache.tMax = geometry.RayAABBIntersectionFactors(
		cache.localAabbMin, cache.localAabbMax, cache.localDirection, cache.localOrigin)

	return geometry.RayAABBIntersection(cache.tMin, cache.tMax)
}

func rayBoxContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	cache := c.(*rayBoxCache)
	box := b.(*shape.BoxShape)

	localIn := cache.localOrigin.Add(cache.localDirection.Mul(cache.tMin))
	localOut := cache.localOrigin.Add(cache.localDirection.Mul(cache.tMax))

	faces := [6]float64{
		cache.localAabbMax[0], cache.localAabbMax[1], cache.localAabbMax[2],
		cache.localAabbMin[0], cache.localAabbMin[1], cache.localAabbMin[2],
	}

	cache.contactFaceIndex = 0
	minDelta := absFloat(faces[0] - localIn[0])
	for i := 1; i < 6; i++ {
		delta := absFloat(faces[i] - localIn[i%3])
		if delta < minDelta {
			minDelta = delta
			cache.contactFaceIndex = i
		}
	}

	cache.inPoint = cache.boxModelMatrix.Mul3x1(localIn).Add(box.Center())
	cache.outPoint = cache.boxModelMatrix.Mul3x1(localOut).Add(box.Center())

	axis := unitAxis(cache.contactFaceIndex % 3)
	sign := 1.0
	if faces[cache.contactFaceIndex] < 0 {
		sign = -1.0
	}

	return cache.boxModelMatrix.Mul3x1(axis.Mul(sign)).Normalize()
}

func rayBoxPenetration(a, b shape.Shape, c interface{}) float64 {
	cache := c.(*rayBoxCache)
	return cache.outPoint.Sub(cache.inPoint).Len()
}

func unitAxis(i int) mgl64.Vec3 {
	var v mgl64.Vec3
	v[i] = 1
	return v
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
