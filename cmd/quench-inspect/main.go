// Package main is a layout inspection tool for the quench engine.
//
// It reads text from a file argument or stdin, lays it out with the
// deterministic monospace shaper, and prints one record per line box.
// Useful for eyeballing wrap decisions and caret geometry without a
// host application.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/quenchtext/quench/internal/config"
	"github.com/quenchtext/quench/internal/engine/layout"
	"github.com/quenchtext/quench/internal/engine/shaping"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		wrapMode    string
		maxWidth    float64
		showRuns    bool
		showCarets  bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file (.yaml, .yml, or .toml)")
	flag.StringVar(&wrapMode, "wrap", "", "Wrap mode override: none, word, or char")
	flag.Float64Var(&maxWidth, "width", 0, "Wrap width override in pixels")
	flag.BoolVar(&showRuns, "runs", false, "Print visual-order runs for each line")
	flag.BoolVar(&showCarets, "carets", false, "Print caret rects at each line boundary")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("quench-inspect %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if wrapMode != "" {
		cfg.Layout.Wrap = wrapMode
	}
	if maxWidth > 0 {
		cfg.Layout.MaxWidth = maxWidth
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	text, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	l := layout.New(text, shaping.NewMonoShaper(), cfg.Params(), cfg.LayoutOptions()...)
	printLayout(os.Stdout, l, showRuns, showCarets)
	return 0
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printLayout(w io.Writer, l *layout.TextLayout, showRuns, showCarets bool) {
	fmt.Fprintf(w, "text: %d bytes, %d lines, %.1fx%.1f px\n",
		l.Len(), l.LineCount(), l.MaxLineWidth(), l.TotalHeight())

	for i, line := range l.Lines() {
		fmt.Fprintf(w, "line %3d [%d:%d) y=%.1f w=%.1f h=%.1f baseline=%.1f\n",
			i, line.Range.Start, line.Range.End,
			line.YOffset, line.Width, line.Height, line.YOffset+line.Baseline)
		if showRuns {
			for j, run := range line.Runs {
				fmt.Fprintf(w, "  run %d [%d:%d) %s w=%.1f clusters=%d\n",
					j, run.Range.Start, run.Range.End,
					run.Direction, run.Width, len(run.Clusters))
			}
		}
		if showCarets {
			start := l.CursorRectAt(line.Range.Start)
			end := l.CursorRectAt(line.Range.End)
			fmt.Fprintf(w, "  caret start=(%.1f,%.1f) end=(%.1f,%.1f)\n",
				start.X, start.Y, end.X, end.Y)
		}
	}
}
