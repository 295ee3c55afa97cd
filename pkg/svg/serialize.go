package svg

import (
	"fmt"
	"strings"

	"github.com/go-drift/pathkit/pkg/path"
)

// NoPathData is the sentinel Serialize returns for an empty path, so
// callers never embed an empty or invalid d attribute.
const NoPathData = "none"

// Serialize emits one space-joined token per segment: M<x>,<y> for a
// moveto, C<c1x>,<c1y> <c2x>,<c2y> <x>,<y> for a cubic. Coordinates are
// formatted to two decimals, so Parse(Serialize(p)) reproduces p to that
// precision and no further.
func Serialize(p path.Path) string {
	if p.Empty() {
		return NoPathData
	}
	parts := make([]string, 0, len(p))
	for _, seg := range p {
		switch s := seg.(type) {
		case path.MoveTo:
			parts = append(parts, fmt.Sprintf("M%.2f,%.2f", s.Point.X, s.Point.Y))
		case path.CubicTo:
			parts = append(parts, fmt.Sprintf("C%.2f,%.2f %.2f,%.2f %.2f,%.2f",
				s.Control1.X, s.Control1.Y,
				s.Control2.X, s.Control2.Y,
				s.To.X, s.To.Y))
		}
	}
	return strings.Join(parts, " ")
}
