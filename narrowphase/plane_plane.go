package narrowphase

import (
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// planePlaneTest reports a "hit" whenever the two planes aren't
// parallel: non-parallel planes always intersect along a line
// somewhere in space, so this is really a parallelism test rather than
// a bounded overlap test.
func planePlaneTest(a, b shape.Shape, c interface{}) bool {
	planeA := a.(*shape.PlaneShape)
	planeB := b.(*shape.PlaneShape)

	cross := planeA.Normal.Cross(planeB.Normal)
	return cross.Dot(cross) != 0
}

func planePlaneContactNormal(a, b shape.Shape, c interface{}) mgl64.Vec3 {
	return b.(*shape.PlaneShape).Normal
}

func planePlanePenetration(a, b shape.Shape, c interface{}) float64 {
	return maxPenetration
}
