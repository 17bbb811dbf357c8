package narrowphase

import (
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

type pairKey [2]shape.Tag

// HashPair combines two tags into the order-insensitive bucket hash
// the original reference detector used to pick a bucket for its
// pair-keyed tables (hash(tagA) XOR hash(tagB)). Dispatch itself does
// not rely on this value for correctness - the Dispatcher keys its
// tables by the literal (tagA, tagB) pair, whose equality check is
// order-sensitive - but it's exposed here for anyone building an
// alternate open-addressed table on top of the same tag set.
func HashPair(tagA, tagB shape.Tag) uint32 {
	return uint32(tagA) ^ uint32(tagB)
}

type testFunc func(a, b shape.Shape, cache interface{}) bool
type normalFunc func(a, b shape.Shape, cache interface{}) mgl64.Vec3
type depthFunc func(a, b shape.Shape, cache interface{}) float64

type dispatchEntry struct {
	test   testFunc
	normal normalFunc
	depth  depthFunc
	cache  interface{}
}

// Dispatcher routes a pair of shapes to the engine registered for
// their ordered tag pair. It is not safe for concurrent use: each
// registered pair owns one scratch cache, reused and overwritten on
// every Test call for that pair.
type Dispatcher struct {
	entries map[pairKey]*dispatchEntry
	state   protocolState
}

// NewDispatcher builds a Dispatcher with every ordered pair over
// {RAY, PLANE, SPHERE, BOX} registered. Triangle, Cone, Cylinder and
// Capsule shapes have no registered engine; Test/ContactNormal/
// Penetration on a pair involving one of them return ErrUnsupportedPair.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{entries: make(map[pairKey]*dispatchEntry, 16)}

	d.register(shape.Ray, shape.Ray, rayRayTest, rayRayContactNormal, rayRayPenetration, &rayRayCache{})
	d.register(shape.Ray, shape.Plane, rayPlaneTest, rayPlaneContactNormal, rayPlanePenetration, &rayPlaneCache{})
	d.register(shape.Ray, shape.Sphere, raySphereTest, raySphereContactNormal, raySpherePenetration, &raySphereCache{})
	d.register(shape.Ray, shape.Box, rayBoxTest, rayBoxContactNormal, rayBoxPenetration, &rayBoxCache{})

	d.register(shape.Plane, shape.Ray, planeRayTest, planeRayContactNormal, planeRayPenetration, &planeRayCache{})
	d.register(shape.Plane, shape.Plane, planePlaneTest, planePlaneContactNormal, planePlanePenetration, &planePlaneCache{})
	d.register(shape.Plane, shape.Sphere, planeSphereTest, planeSphereContactNormal, planeSpherePenetration, &planeSphereCache{})
	d.register(shape.Plane, shape.Box, planeBoxTest, planeBoxContactNormal, planeBoxPenetration, &planeBoxCache{})

	d.register(shape.Sphere, shape.Ray, sphereRayTest, sphereRayContactNormal, sphereRayPenetration, &sphereRayCache{})
	d.register(shape.Sphere, shape.Plane, spherePlaneTest, spherePlaneContactNormal, spherePlanePenetration, &spherePlaneCache{})
	d.register(shape.Sphere, shape.Sphere, sphereSphereTest, sphereSphereContactNormal, sphereSpherePenetration, &sphereSphereCache{})
	d.register(shape.Sphere, shape.Box, sphereBoxTest, sphereBoxContactNormal, sphereBoxPenetration, &sphereBoxCache{})

	d.register(shape.Box, shape.Ray, boxRayTest, boxRayContactNormal, boxRayPenetration, &boxRayCache{})
	d.register(shape.Box, shape.Plane, boxPlaneTest, boxPlaneContactNormal, boxPlanePenetration, &boxPlaneCache{})
	d.register(shape.Box, shape.Sphere, boxSphereTest, boxSphereContactNormal, boxSpherePenetration, &boxSphereCache{})
	d.register(shape.Box, shape.Box, boxBoxTest, boxBoxContactNormal, boxBoxPenetration, &boxBoxCache{})

	return d
}

func (d *Dispatcher) register(tagA, tagB shape.Tag, test testFunc, normal normalFunc, depth depthFunc, cache interface{}) {
	d.entries[pairKey{tagA, tagB}] = &dispatchEntry{test: test, normal: normal, depth: depth, cache: cache}
}

// Test reports whether a and b intersect, populating the pair's
// scratch cache for a subsequent ContactNormal/Penetration call.
// Calling ContactNormal or Penetration for a different pair before
// calling Test again invalidates that cache's contents.
func (d *Dispatcher) Test(a, b shape.Shape) (bool, error) {
	entry, ok := d.entries[pairKey{a.Tag(), b.Tag()}]
	if !ok {
		return false, ErrUnsupportedPair
	}
	d.state.assertTest()
	return entry.test(a, b, entry.cache), nil
}

// ContactNormal returns the contact normal for the pair last passed to
// Test. Calling it before Test, or for a pair Test reported no
// intersection for, is undefined behavior in release builds (no
// logging, no retry); see debug.go for the build-tag-gated assertion.
func (d *Dispatcher) ContactNormal(a, b shape.Shape) (mgl64.Vec3, error) {
	entry, ok := d.entries[pairKey{a.Tag(), b.Tag()}]
	if !ok {
		return mgl64.Vec3{}, ErrUnsupportedPair
	}
	d.state.assertContactNormal()
	return entry.normal(a, b, entry.cache), nil
}

// Penetration returns the penetration depth for the pair last passed
// to Test and ContactNormal, in that order.
func (d *Dispatcher) Penetration(a, b shape.Shape) (float64, error) {
	entry, ok := d.entries[pairKey{a.Tag(), b.Tag()}]
	if !ok {
		return 0, ErrUnsupportedPair
	}
	d.state.assertPenetration()
	return entry.depth(a, b, entry.cache), nil
}
