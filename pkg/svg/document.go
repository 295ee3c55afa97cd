package svg

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-drift/pathkit/pkg/errors"
	"github.com/go-drift/pathkit/pkg/path"
	"github.com/go-drift/pathkit/pkg/text"
)

// viewBoxPadding is the margin added around the path bounds in the exported
// document's viewBox.
const viewBoxPadding = 50

// xmlEscaper escapes the characters that would break the text element.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// ViewBox returns the document viewBox over all segment points, padded on
// every side. Returns false for an empty path.
func ViewBox(p path.Path) (string, bool) {
	box, ok := p.Bounds()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.2f %.2f %.2f %.2f",
		box.Left-viewBoxPadding,
		box.Top-viewBoxPadding,
		box.Width()+2*viewBoxPadding,
		box.Height()+2*viewBoxPadding), true
}

// WriteDocument writes a complete SVG document: the serialized path, and a
// text element riding it via textPath with a looping startOffset animation
// from 100% to -100% over the configured duration. User text content is
// XML-escaped before embedding.
func WriteDocument(w io.Writer, p path.Path, cfg text.Config) error {
	const op = "svg.WriteDocument"
	if p.Empty() {
		return errors.Validationf(op, "path is empty")
	}
	cfg = cfg.Normalize()

	viewBox, _ := ViewBox(p)
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg"
viewBox="%s"
width="100%%"
height="100%%">
    <path id="curve"
        d="%s"
        fill="none"
        stroke="black"
        stroke-width="2"/>
    <text font-size="%g"
        fill="%s"
        letter-spacing="%dpx">
        <textPath href="#curve"
            startOffset="%g%%">
            %s
            <animate
                attributeName="startOffset"
                from="100%%"
                to="-100%%"
                dur="%gs"
                repeatCount="indefinite"/>
        </textPath>
    </text>
</svg>`,
		viewBox,
		Serialize(p),
		cfg.FontSize,
		cfg.Color,
		cfg.LetterSpacing,
		cfg.StartOffset,
		xmlEscaper.Replace(cfg.Content),
		cfg.Duration.Seconds(),
	)
	if err != nil {
		return errors.IO(op, err)
	}
	return nil
}

// Document renders the SVG document as a string.
func Document(p path.Path, cfg text.Config) (string, error) {
	var sb strings.Builder
	if err := WriteDocument(&sb, p, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// pathDataRe locates the d attribute of the first path element.
var pathDataRe = regexp.MustCompile(`<path[^>]*\bd="([^"]+)"`)

// ExtractPathData pulls the first path element's d attribute out of a whole
// SVG document, for importing files saved by this or any other editor.
func ExtractPathData(doc string) (string, error) {
	m := pathDataRe.FindStringSubmatch(doc)
	if m == nil {
		return "", errors.Syntaxf("svg.ExtractPathData", -1,
			"no path data found in svg document")
	}
	return m[1], nil
}
