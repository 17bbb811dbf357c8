package narrowphase

import (
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// rayRayTest finds the closest points of approach of two lines via the
// standard cross-product shortcut (equivalent to solving the 2x2
// Cramer's-rule system for the two line parameters) and reports a hit
// when those points coincide within tolerance.
func rayRayTest(a, b shape.Shape, c interface{}) bool {
	cache := c.(*rayRayCache)
	rayA := a.(*shape.RayShape)
	rayB := b.(*shape.RayShape)

	aOrigin, aDir := rayA.Center(), rayA.Direction
	bOrigin, bDir := rayB.Center(), rayB.Direction

	n := aDir.Cross(bDir)
	denominator := n.Dot(n)
	if denominator == 0 {
		return false
	}

	r := bOrigin.Sub(aOrigin)
	n1 := aDir.Cross(n)
	n2 := bDir.Cross(n)

	t1 := r.Dot(n2) / denominator
	t2 := r.Dot(n1) / denominator

	cache.aClosestApproach = aOrigin.Add(aDir.Mul(t1))
	cache.bClosestApproach = bOrigin.Add(bDir.Mul(t2))

	diff := cache.aClosestApproach.Sub(cache.bClosestApproach)
	return diff.Dot(diff) < 1e-10
}

func rayRayContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	rayA := a.(*shape.RayShape)
	rayB := b.(*shape.RayShape)
	return rayB.Direction.Cross(rayA.Direction).Cross(rayB.Direction).Normalize()
}

func rayRayPenetration(a, b shape.Shape, c interface{}) float64 {
	return 0
}
