// Command narrowphase demonstrates the Test/ContactNormal/Penetration
// protocol over a small hand-built scene: a ground plane, a resting
// sphere, a falling box, and a probe ray. It performs no broad-phase
// culling, integration, or constraint resolution of its own - those
// are left to a caller that embeds this package.
package main

import (
	"fmt"

	"github.com/geotyper/pegasus/narrowphase"
	"github.com/geotyper/pegasus/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	dispatcher := narrowphase.NewDispatcher()

	ground := shape.NewPlane(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	restingSphere := shape.NewSphere(mgl64.Vec3{0, 1, 0}, 1)
	fallingBox := shape.NewBox(
		mgl64.Vec3{2, 3, 0},
		mgl64.Vec3{0.5, 0, 0},
		mgl64.Vec3{0, 0.5, 0},
		mgl64.Vec3{0, 0, 0.5},
	)
	probe := shape.NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0})

	pairs := []struct {
		label string
		a, b  shape.Shape
	}{
		{"ground/restingSphere", ground, restingSphere},
		{"ground/fallingBox", ground, fallingBox},
		{"restingSphere/fallingBox", restingSphere, fallingBox},
		{"probe/restingSphere", probe, restingSphere},
	}

	for _, p := range pairs {
		reportPair(dispatcher, p.label, p.a, p.b)
	}
}

func reportPair(d *narrowphase.Dispatcher, label string, a, b shape.Shape) {
	hit, err := d.Test(a, b)
	if err != nil {
		fmt.Printf("%s: %v\n", label, err)
		return
	}
	if !hit {
		fmt.Printf("%s: no contact\n", label)
		return
	}

	normal, err := d.ContactNormal(a, b)
	if err != nil {
		fmt.Printf("%s: contact but normal failed: %v\n", label, err)
		return
	}

	penetration, err := d.Penetration(a, b)
	if err != nil {
		fmt.Printf("%s: contact but penetration failed: %v\n", label, err)
		return
	}

	fmt.Printf("%s: contact, normal=%v, penetration=%.4f\n", label, normal, penetration)
}
