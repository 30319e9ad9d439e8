package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/textpath"
	"github.com/tdewolff/textpath/rasterizer"
)

type Export struct {
	Config        string `short:"c" desc:"YAML config file"`
	Data          string `short:"d" desc:"Path data, instead of an input file"`
	Raw           bool   `desc:"Keep coordinates instead of fitting the path to the canvas"`
	Text          string `short:"t" desc:"Text following the path"`
	FontSize      string `desc:"Font size in pixels"`
	LetterSpacing string `desc:"Letter spacing in pixels"`
	StartOffset   string `desc:"Text start offset in percent"`
	Color         string `desc:"Text color"`
	Duration      string `desc:"Animation duration in seconds"`
	PathOnly      bool   `desc:"Write path data only"`
	Minify        bool   `short:"m" desc:"Minify SVG"`
	Open          bool   `desc:"Open the SVG in the browser"`
	Verbose       bool   `short:"v" desc:"Log edits to stderr"`
	Output        string `short:"o" desc:"Output file"`
	Input         string `index:"0" desc:"Input file with path data or an SVG"`
}

type Preview struct {
	Config  string  `short:"c" desc:"YAML config file"`
	Data    string  `short:"d" desc:"Path data, instead of an input file"`
	Raw     bool    `desc:"Keep coordinates instead of fitting the path to the canvas"`
	Text    string  `short:"t" desc:"Text following the path"`
	Time    float64 `default:"-1" desc:"Draw the animated text at this time in seconds instead of the static preview"`
	Verbose bool    `short:"v" desc:"Log edits to stderr"`
	Output  string  `short:"o" desc:"Output image, one of .png, .jpg or .gif"`
	Input   string  `index:"0" desc:"Input file with path data or an SVG"`
}

type Animate struct {
	Config  string `short:"c" desc:"YAML config file"`
	Data    string `short:"d" desc:"Path data, instead of an input file"`
	Raw     bool   `desc:"Keep coordinates instead of fitting the path to the canvas"`
	Text    string `short:"t" desc:"Text following the path"`
	Frames  int    `short:"n" default:"20" desc:"Number of frames, zero runs until interrupted"`
	Dir     string `desc:"Write every frame as a PNG image to this directory"`
	Verbose bool   `short:"v" desc:"Log edits to stderr"`
	Input   string `index:"0" desc:"Input file with path data or an SVG"`
}

func main() {
	root := argp.NewCmd(&Export{}, "Path builder with text following the path")
	root.AddCmd(&Preview{}, "preview", "Draw the path and text preview to an image")
	root.AddCmd(&Animate{}, "animate", "Print the position of the animated text every frame")
	root.Parse()
	root.PrintHelp()
}

// load returns an editor with the path from the input file or path data.
func load(config, data, input string, raw, verbose bool) (*textpath.Editor, error) {
	if verbose {
		textpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := textpath.DefaultConfig()
	if config != "" {
		var err error
		if cfg, err = textpath.LoadConfig(config); err != nil {
			return nil, err
		}
	}
	if raw {
		cfg.FitOnLoad = false
	}

	e := textpath.NewEditor(cfg)
	if data != "" {
		if err := e.LoadPathData(data); err != nil {
			return nil, fmt.Errorf("invalid path data: %w", err)
		}
	} else if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if err := e.LoadFile(f); err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
	} else {
		return nil, argp.ShowUsage
	}
	return e, nil
}

func create(filename string) (io.WriteCloser, error) {
	if filename == "" || filename == "-" {
		return os.Stdout, nil
	}
	return os.Create(filename)
}

func (cmd *Export) Run() error {
	e, err := load(cmd.Config, cmd.Data, cmd.Input, cmd.Raw, cmd.Verbose)
	if err != nil {
		return err
	}
	if e.Text, err = textpath.ParseTextParams(e.Text, cmd.Text, cmd.FontSize, cmd.LetterSpacing, cmd.StartOffset, cmd.Color, cmd.Duration); err != nil {
		return err
	}

	w, err := create(cmd.Output)
	if err != nil {
		return err
	}
	if cmd.PathOnly {
		_, err = fmt.Fprintln(w, e.PathData())
	} else {
		err = e.WriteSVG(w, cmd.Minify)
	}
	if w != os.Stdout {
		if errClose := w.Close(); err == nil {
			err = errClose
		}
	}
	if err != nil {
		return err
	}

	if cmd.Open {
		if w == os.Stdout {
			return fmt.Errorf("must specify output file to open in browser")
		}
		return browser.OpenFile(cmd.Output)
	}
	return nil
}

func (cmd *Preview) Run() error {
	if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}
	writer, ok := rasterizer.WriterFor(strings.ToLower(filepath.Ext(cmd.Output)))
	if !ok {
		return fmt.Errorf("unsupported image format: %s", cmd.Output)
	}

	e, err := load(cmd.Config, cmd.Data, cmd.Input, cmd.Raw, cmd.Verbose)
	if err != nil {
		return err
	}
	if cmd.Text != "" {
		e.Text.Text = cmd.Text
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	if 0.0 <= cmd.Time {
		return writer(f, rasterizer.DrawFrame(e, time.Unix(0, int64(cmd.Time*1e9))))
	}
	return writer(f, rasterizer.Draw(e))
}

func (cmd *Animate) Run() error {
	e, err := load(cmd.Config, cmd.Data, cmd.Input, cmd.Raw, cmd.Verbose)
	if err != nil {
		return err
	}
	if cmd.Text != "" {
		e.Text.Text = cmd.Text
	}
	if cmd.Dir != "" {
		if err := os.MkdirAll(cmd.Dir, 0755); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(e.FrameInterval)
	defer ticker.Stop()
	for frame := 0; cmd.Frames <= 0 || frame < cmd.Frames; frame++ {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			glyphs := e.Tick(now)
			fmt.Printf("%4d %s\n", frame, formatGlyphs(glyphs))
			if cmd.Dir != "" {
				if err := writeFrame(filepath.Join(cmd.Dir, fmt.Sprintf("frame%04d.png", frame)), e, now); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeFrame(filename string, e *textpath.Editor, now time.Time) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := rasterizer.PNGWriter()(f, rasterizer.DrawFrame(e, now)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatGlyphs(glyphs []textpath.Glyph) string {
	sb := strings.Builder{}
	for i, glyph := range glyphs {
		if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s%v", glyph.Char, glyph.Pos)
	}
	return sb.String()
}
