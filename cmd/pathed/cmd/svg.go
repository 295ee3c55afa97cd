package cmd

import (
	"os"
	"strings"

	"github.com/go-drift/pathkit/cmd/pathed/internal/config"
	"github.com/go-drift/pathkit/pkg/path"
	"github.com/go-drift/pathkit/pkg/svg"
)

func init() {
	RegisterCommand(&Command{
		Name:  "svg",
		Short: "Render the animated-text SVG document",
		Long: `Parse path data, fit it to the configured viewport, and write the full
SVG document to stdout: the path element plus a text element riding it
with a looping startOffset animation.

Text content and styling come from pathed.yaml, with a --text override:

  pathed svg --text "hello world" path.txt > out.svg`,
		Usage: "pathed svg [--text STRING] [file]",
		Run:   runSVG,
	})
}

func runSVG(args []string) error {
	cfg, err := config.Resolve(".")
	if err != nil {
		return err
	}

	var files []string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--text" && i+1 < len(args):
			cfg.Text.Content = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--text="):
			cfg.Text.Content = strings.TrimPrefix(args[i], "--text=")
		default:
			files = append(files, args[i])
		}
	}

	input, err := readInput(files)
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

	return svg.WriteDocument(os.Stdout, fitted, cfg.Text)
}
