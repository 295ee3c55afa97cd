package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/pathkit/cmd/pathed/internal/config"
	"github.com/go-drift/pathkit/pkg/path"
	"github.com/go-drift/pathkit/pkg/svg"
)

func init() {
	RegisterCommand(&Command{
		Name:  "fit",
		Short: "Rescale path data to the viewport",
		Long: `Parse path data, uniformly rescale and center it within the configured
viewport (800x600 with 50px padding unless pathed.yaml overrides it),
and print the fitted path data.

This is the same normalization the editor applies on import, so paths
of arbitrary scale land inside the visible canvas.`,
		Usage: "pathed fit [file]",
		Run:   runFit,
	})
}

func runFit(args []string) error {
	cfg, err := config.Resolve(".")
	if err != nil {
		return err
	}

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

	fitted := path.FitToBounds(p, cfg.Width, cfg.Height, cfg.Padding)
	fmt.Println(svg.Serialize(fitted))
	return nil
}
