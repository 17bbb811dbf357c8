package narrowphase

import "github.com/go-gl/mathgl/mgl64"

// Each ordered shape-tag pair gets its own scratch cache, populated by
// Test and read back by ContactNormal and Penetration. Callers must
// call them in that order for a given pair; see debug.go for the
// optional protocol assertion.

type rayRayCache struct {
	aClosestApproach, bClosestApproach mgl64.Vec3
}

type rayPlaneCache struct {
	contactPoint mgl64.Vec3
}

type raySphereCache struct {
	tMin, tMax  float64
	inPoint     mgl64.Vec3
	outPoint    mgl64.Vec3
}

type rayBoxCache struct {
	boxModelMatrix    mgl64.Mat3
	inversebox        mgl64.Mat3
	localAabbMin      mgl64.Vec3
	localAabbMax      mgl64.Vec3
	localDirection    mgl64.Vec3
	localOrigin       mgl64.Vec3
	tMin, tMax        float64
	inPoint, outPoint mgl64.Vec3
	contactFaceIndex  int
}

type planePlaneCache struct{}

type planeSphereCache struct {
	penetration float64
}

type planeBoxCache struct {
	penetrations [8]float64
}

type sphereSphereCache struct {
	baVector    mgl64.Vec3
	penetration float64
}

type sphereBoxCache struct {
	boxVertices            [8]mgl64.Vec3
	boxAxes                [6]mgl64.Vec3
	boxNormals             [6]mgl64.Vec3
	boxFaceCenterVertices  [6]mgl64.Vec3
	boxFaceDistances       [6]float64
	boxSphereVector        mgl64.Vec3
	boxContactPoint        mgl64.Vec3
	sphereContactNormal    mgl64.Vec3
	sphereContactPoint     mgl64.Vec3
	boxContactNormal       mgl64.Vec3
}

type boxBoxCache struct {
	aBoxVertices, bBoxVertices [8]mgl64.Vec3
	aBoxAxes, bBoxAxes         [6]mgl64.Vec3
	aBoxFaces, bBoxFaces       [6]mgl64.Vec3
	separatingAxes             []mgl64.Vec3
	contactNormal              mgl64.Vec3
	penetration                float64
}

// Symmetric-pair caches wrap the canonical-orientation cache for the
// swapped call; the swapped engines reuse the canonical math and only
// adjust which normal is returned.

type planeRayCache struct{ rp rayPlaneCache }
type sphereRayCache struct{ rs raySphereCache }
type boxRayCache struct{ rb rayBoxCache }
type spherePlaneCache struct{ ps planeSphereCache }
type boxPlaneCache struct{ pb planeBoxCache }
type boxSphereCache struct{ sb sphereBoxCache }
