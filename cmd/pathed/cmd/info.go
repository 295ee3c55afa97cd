package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/pathkit/pkg/svg"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Summarize path data",
		Long: `Parse path data and print a summary: segment count, bounding box,
and the normalized serialized form.

The input may be bare path data ("M0,0 C...") or a whole SVG document,
in which case the first path element's d attribute is used. Reads from
stdin when no file is given or the file is "-".`,
		Usage: "pathed info [file]",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	if isDocument(input) {
		input, err = svg.ExtractPathData(input)
		if err != nil {
			return err
		}
	}

	p, err := svg.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	box, _ := p.Bounds()
	fmt.Printf("segments: %d (1 moveto, %d cubic)\n", len(p), len(p)-1)
	fmt.Printf("bounds:   (%.2f, %.2f) to (%.2f, %.2f)\n",
		box.Left, box.Top, box.Right, box.Bottom)
	fmt.Printf("size:     %.2f x %.2f\n", box.Width(), box.Height())
	if vb, ok := svg.ViewBox(p); ok {
		fmt.Printf("viewBox:  %s\n", vb)
	}
	fmt.Printf("d:        %s\n", svg.Serialize(p))
	return nil
}
