// Package narrowphase implements the per-shape-pair intersection
// engines (Test, ContactNormal, Penetration) and the Dispatcher that
// routes a pair of shapes to the right engine by shape tag.
package narrowphase

import (
	"errors"
	"math"
)

// ErrUnsupportedPair is returned by the Dispatcher when no engine is
// registered for an ordered pair of shape tags.
var ErrUnsupportedPair = errors.New("narrowphase: unsupported shape pair")

// maxPenetration is the sentinel depth returned by pairs whose contact
// geometry has no meaningful overlap measure (rays and planes are
// infinitely thin, so "how far apart" doesn't apply the way it does
// for two solids).
const maxPenetration = math.MaxFloat64
