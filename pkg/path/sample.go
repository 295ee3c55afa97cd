package path

import "github.com/go-drift/pathkit/pkg/geometry"

// evalCubic evaluates the cubic Bezier polynomial
// B(t) = (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3.
func evalCubic(p0, p1, p2, p3 geometry.Point, t float64) geometry.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return geometry.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Sample produces approximately n points along the whole chain, beginning
// with the MoveTo point. Each cubic segment receives an equal point budget
// of n divided by the number of curve segments, so the density is
// non-uniform when the segment count does not divide n evenly. That
// approximation is deliberate and matches the editor's rendering and text
// placement behavior.
//
// Sample is a pure function: the same path and n always yield the same
// sequence. An empty path yields nil.
func Sample(p Path, n int) []geometry.Point {
	if len(p) == 0 {
		return nil
	}

	points := make([]geometry.Point, 0, n+1)
	if first, ok := p[0].(MoveTo); ok {
		points = append(points, first.Point)
	}

	budget := n / max(1, len(p)-1)
	for i := 1; i < len(p); i++ {
		cubic, ok := p[i].(CubicTo)
		if !ok {
			continue
		}
		start := p[i-1].End()
		for j := 1; j <= budget; j++ {
			t := float64(j) / float64(budget)
			points = append(points, evalCubic(start, cubic.Control1, cubic.Control2, cubic.To, t))
		}
	}
	return points
}
