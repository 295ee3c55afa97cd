// Package path implements the pathkit segment model: an ordered chain of
// move and cubic Bezier segments, its editing operations, curve sampling,
// and viewport fitting.
//
// A non-empty path begins with exactly one [MoveTo]; every subsequent
// segment is a [CubicTo]. The start point of each cubic is the terminal
// point of the segment before it, resolved by walking the chain rather than
// cached. Segments are immutable values: editing a coordinate replaces the
// segment at that index, which keeps history snapshots safe from aliasing.
package path

import (
	"fmt"

	"github.com/go-drift/pathkit/pkg/geometry"
)

// DefaultHitRadius is the pick distance for control handles, in canvas units.
const DefaultHitRadius = 10

// Role names one editable coordinate within a segment.
type Role int

const (
	// RoleTo is the terminal point: the whole point of a MoveTo, or the
	// endpoint of a CubicTo.
	RoleTo Role = iota
	// RoleControl1 is the first interior control point of a CubicTo.
	RoleControl1
	// RoleControl2 is the second interior control point of a CubicTo.
	RoleControl2
)

// String returns a human-readable representation of the role.
func (r Role) String() string {
	switch r {
	case RoleTo:
		return "to"
	case RoleControl1:
		return "control1"
	case RoleControl2:
		return "control2"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Segment is one drawing instruction: either a MoveTo or a CubicTo.
type Segment interface {
	// End returns the segment's terminal point, used to resolve the start
	// of the following segment.
	End() geometry.Point

	isSegment()
}

// MoveTo establishes a new current point. It is valid only as the first
// segment of a path.
type MoveTo struct {
	Point geometry.Point
}

func (m MoveTo) End() geometry.Point { return m.Point }
func (MoveTo) isSegment()            {}

// CubicTo is a cubic Bezier curve from the previous segment's endpoint to
// To, shaped by two interior control points.
type CubicTo struct {
	Control1 geometry.Point
	Control2 geometry.Point
	To       geometry.Point
}

func (c CubicTo) End() geometry.Point { return c.To }
func (CubicTo) isSegment()            {}

// Path is an ordered sequence of segments.
type Path []Segment

// Clone returns a deep copy of p. Segments are immutable values, so copying
// the slice is sufficient.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Empty reports whether the path has no segments.
func (p Path) Empty() bool {
	return len(p) == 0
}

// EndPoint returns the terminal point of the last segment, or false for an
// empty path.
func (p Path) EndPoint() (geometry.Point, bool) {
	if len(p) == 0 {
		return geometry.Point{}, false
	}
	return p[len(p)-1].End(), true
}

// AppendPoint extends the path toward pt and returns the resulting path.
//
// On an empty path it appends a MoveTo. Otherwise it synthesizes a CubicTo
// whose control points sit at one third and two thirds along the straight
// line from the current endpoint to pt, so the new segment renders straight
// until the user bends its handles.
func (p Path) AppendPoint(pt geometry.Point) Path {
	if len(p) == 0 {
		return Path{MoveTo{Point: pt}}
	}
	end := p[len(p)-1].End()
	seg := CubicTo{
		Control1: end.Lerp(pt, 1.0/3.0),
		Control2: end.Lerp(pt, 2.0/3.0),
		To:       pt,
	}
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// Hit identifies one editable coordinate found by HitTest.
type Hit struct {
	Index int
	Role  Role
}

// HitTest scans segments in order and returns the first coordinate within
// radius of query. For a CubicTo the candidates are tested in the order
// control1, control2, to. First match wins: when handles overlap, earlier
// segments and earlier roles take priority.
func (p Path) HitTest(query geometry.Point, radius float64) (Hit, bool) {
	for i, seg := range p {
		switch s := seg.(type) {
		case MoveTo:
			if query.Distance(s.Point) < radius {
				return Hit{Index: i, Role: RoleTo}, true
			}
		case CubicTo:
			if query.Distance(s.Control1) < radius {
				return Hit{Index: i, Role: RoleControl1}, true
			}
			if query.Distance(s.Control2) < radius {
				return Hit{Index: i, Role: RoleControl2}, true
			}
			if query.Distance(s.To) < radius {
				return Hit{Index: i, Role: RoleTo}, true
			}
		}
	}
	return Hit{}, false
}

// SetPointAt returns a copy of p with the named coordinate of the segment
// at index replaced by pt. The original path is untouched.
func (p Path) SetPointAt(index int, role Role, pt geometry.Point) (Path, error) {
	if index < 0 || index >= len(p) {
		return nil, fmt.Errorf("segment index %d out of range [0, %d)", index, len(p))
	}
	out := p.Clone()
	switch s := out[index].(type) {
	case MoveTo:
		if role != RoleTo {
			return nil, fmt.Errorf("moveto segment has no %s point", role)
		}
		s.Point = pt
		out[index] = s
	case CubicTo:
		switch role {
		case RoleControl1:
			s.Control1 = pt
		case RoleControl2:
			s.Control2 = pt
		case RoleTo:
			s.To = pt
		default:
			return nil, fmt.Errorf("cubic segment has no %s point", role)
		}
		out[index] = s
	}
	return out, nil
}

// PointAt returns the named coordinate of the segment at index.
func (p Path) PointAt(index int, role Role) (geometry.Point, bool) {
	if index < 0 || index >= len(p) {
		return geometry.Point{}, false
	}
	switch s := p[index].(type) {
	case MoveTo:
		if role == RoleTo {
			return s.Point, true
		}
	case CubicTo:
		switch role {
		case RoleControl1:
			return s.Control1, true
		case RoleControl2:
			return s.Control2, true
		case RoleTo:
			return s.To, true
		}
	}
	return geometry.Point{}, false
}

// Bounds returns the bounding box over every point referenced by every
// segment: the MoveTo point and all three points of each CubicTo. Returns
// false for an empty path.
func (p Path) Bounds() (geometry.Rect, bool) {
	if len(p) == 0 {
		return geometry.Rect{}, false
	}
	var box geometry.Rect
	first := true
	add := func(pt geometry.Point) {
		if first {
			box = geometry.RectFromPoint(pt)
			first = false
			return
		}
		box = box.ExpandPoint(pt)
	}
	for _, seg := range p {
		switch s := seg.(type) {
		case MoveTo:
			add(s.Point)
		case CubicTo:
			add(s.Control1)
			add(s.Control2)
			add(s.To)
		}
	}
	return box, true
}

// Validate checks the chain invariant: a non-empty path starts with exactly
// one MoveTo followed only by CubicTo segments.
func (p Path) Validate() error {
	for i, seg := range p {
		switch seg.(type) {
		case MoveTo:
			if i != 0 {
				return fmt.Errorf("moveto at index %d: only the first segment may be a moveto", i)
			}
		case CubicTo:
			if i == 0 {
				return fmt.Errorf("path must begin with a moveto")
			}
		default:
			return fmt.Errorf("unknown segment type at index %d", i)
		}
	}
	return nil
}

// Equal reports exact coordinate equality of two paths.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}
