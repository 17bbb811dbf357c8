package gjk

import "github.com/go-gl/mathgl/mgl64"

// Simplex holds 1-4 points of the Minkowski difference, in the order
// they were added. NearestSimplex always treats the last occupied slot
// as the most recently added point.
type Simplex struct {
	Points [4]mgl64.Vec3
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

// NearestSimplex reduces the simplex to the feature (point, edge, or
// face) closest to the origin and updates direction to point from that
// feature toward the origin, for use as the next support direction.
//
// Returns true when the simplex is a tetrahedron that contains the
// origin, or when the origin lies on the segment that a 2-point
// simplex (or a degenerate triangle or tetrahedron collapsed to one)
// reduces to. Driving repeated Support/NearestSimplex calls to that
// conclusion (or to a provable separation) is the caller's job.
func NearestSimplex(simplex *Simplex, direction *mgl64.Vec3) bool {
	switch simplex.Count {
	case 2:
		return line(simplex, direction)
	case 3:
		return triangle(simplex, direction)
	case 4:
		return tetrahedron(simplex, direction)
	}
	return false
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// closestPointOnSegment projects the origin onto segment AB and
// clamps the result to the segment, returning the clamped point and
// its parameter t in [0,1].
func closestPointOnSegment(a, b mgl64.Vec3) (mgl64.Vec3, float64) {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom < 1e-12 {
		return a, 0
	}
	t := clamp01(a.Mul(-1).Dot(ab) / denom)
	return a.Add(ab.Mul(t)), t
}

// line handles the 2-point simplex (A, B), A most recent. It returns
// true when the origin lies on the segment (squared distance below
// 1e-16); otherwise it either collapses to A or B, or keeps both with
// direction pointing from the segment toward the origin.
func line(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[1]
	b := simplex.Points[0]

	closest, t := closestPointOnSegment(a, b)
	if closest.LenSqr() < 1e-16 {
		return true
	}

	switch {
	case t <= 0:
		simplex.Points[0] = a
		simplex.Count = 1
	case t >= 1:
		simplex.Points[0] = b
		simplex.Count = 1
	}

	*direction = closest.Mul(-1)
	return false
}

// triangle handles the 3-point simplex (A, B, C), A most recent. Each
// candidate edge touching A is tested in turn; the first whose
// perpendicular points toward the origin wins the reduction. Falls
// through to the face itself, oriented toward the origin, when
// neither edge does. A non-degenerate triangle always returns false; a
// degenerate one collapses to the segment AB and returns line's result.
func triangle(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[2]
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)
	abc := ab.Cross(ac)

	if abc.LenSqr() < 1e-10 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		return line(simplex, direction)
	}

	edges := [2]struct {
		selector mgl64.Vec3
		near     mgl64.Vec3
		perp     mgl64.Vec3
	}{
		{ab.Cross(abc), b, ab.Cross(ao).Cross(ab)},
		{abc.Cross(ac), c, ac.Cross(ao).Cross(ac)},
	}

	for _, edge := range edges {
		if edge.selector.Dot(ao) > 0 {
			simplex.Points[0] = edge.near
			simplex.Points[1] = a
			simplex.Count = 2
			*direction = edge.perp
			return false
		}
	}

	if abc.Dot(ao) > 0 {
		*direction = abc
		return false
	}

	simplex.Points[0] = a
	simplex.Points[1] = c
	simplex.Points[2] = b
	simplex.Count = 3
	*direction = abc.Mul(-1)
	return false
}

// tetrahedron handles the 4-point simplex (A, B, C, D), A most recent.
// It is the only case that can confirm the origin is contained: the
// three faces touching A are built with outward-pointing normals, any
// degeneracy among them collapses straight to face ABC, and otherwise
// the first face the origin falls outside of replaces the simplex
// with that face's triangle. Containment within all three means the
// origin is inside the tetrahedron.
func tetrahedron(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[3]
	b := simplex.Points[2]
	c := simplex.Points[1]
	d := simplex.Points[0]
	ao := a.Mul(-1)

	outwardNormal := func(v1, v2, opposite mgl64.Vec3) mgl64.Vec3 {
		n := v1.Sub(a).Cross(v2.Sub(a))
		if n.Dot(opposite.Sub(a)) > 0 {
			n = n.Mul(-1)
		}
		return n
	}

	faces := [3]struct {
		normal mgl64.Vec3
		keep   [3]mgl64.Vec3
	}{
		{outwardNormal(b, c, d), [3]mgl64.Vec3{c, b, a}}, // face ABC, opposite D
		{outwardNormal(c, d, b), [3]mgl64.Vec3{d, c, a}}, // face ACD, opposite B
		{outwardNormal(d, b, c), [3]mgl64.Vec3{b, d, a}}, // face ADB, opposite C
	}

	for _, f := range faces {
		if f.normal.LenSqr() < 1e-10 {
			simplex.Points[0], simplex.Points[1], simplex.Points[2] = c, b, a
			simplex.Count = 3
			return triangle(simplex, direction)
		}
	}

	for _, f := range faces {
		if f.normal.Dot(ao) > 0 {
			simplex.Points[0], simplex.Points[1], simplex.Points[2] = f.keep[0], f.keep[1], f.keep[2]
			simplex.Count = 3
			return triangle(simplex, direction)
		}
	}

	return true
}
