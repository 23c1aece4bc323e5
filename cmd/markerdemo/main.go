// Command markerdemo lays out a timeline of markers and renders it to PNG.
//
//	markerdemo -config timeline.yaml -output markers.png
//	markerdemo -font DejaVuSans -shaper harfbuzz
//
// Without -config a built-in session is rendered.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/font"

	"github.com/gogpu/marker"
	"github.com/gogpu/marker/canvas"
	"github.com/gogpu/marker/canvas/raster"
	"github.com/gogpu/marker/text"
	"github.com/gogpu/marker/timeline"
)

const demoDocument = `
samples_per_pixel: 120
width: 960
height: 120
markers:
  - {type: session-start, at: 0, color: "#8a8a8a", label: start}
  - {type: tempo, at: 4800, color: "#c8a050", bpm: 120}
  - {type: meter, at: 8400, color: "#a0a0c8", divisions: 4, divisor: 4}
  - {type: loop-start, at: 14400, color: "#40a040", label: Loop}
  - {type: mark, at: 24000, color: "#d04040", label: Verse, selected: true}
  - {type: punch-in, at: 36000, color: "#d04080", label: punch}
  - {type: mark, at: 48000, color: "#d04040", label: "Chorus with a long name", badge: true}
  - {type: punch-out, at: 54000, color: "#d04080"}
  - {type: loop-end, at: 60000, color: "#40a040", show_line: true}
  - {type: tempo, at: 72000, color: "#c8a050", bpm: 96.5}
  - {type: session-end, at: 108000, color: "#8a8a8a", label: end}
`

func main() {
	var (
		configPath = flag.String("config", "", "YAML timeline document (built-in demo if empty)")
		output     = flag.String("output", "markers.png", "output PNG file")
		width      = flag.Int("width", 0, "image width (overrides the document)")
		height     = flag.Int("height", 0, "image height (overrides the document)")
		profile    = flag.String("profile", "", "marker profile: standard or alternate (overrides the document)")
		fontName   = flag.String("font", "", "system font file or base name (embedded Go Regular if empty)")
		fontSize   = flag.Float64("font-size", text.DefaultSize, "label font size in pixels")
		shaper     = flag.String("shaper", "ximage", "label measurement: ximage or harfbuzz")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	marker.SetLogger(logger)

	doc, err := loadDocument(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if *width > 0 {
		doc.Width = *width
	}
	if *height > 0 {
		doc.Height = *height
	}
	if *profile != "" {
		if doc.Profile, err = marker.ParseProfile(*profile); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}

	fc := fontConfig{name: *fontName, size: *fontSize, shaper: *shaper}
	if err := run(&doc, *output, fc, logger); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadDocument(path string) (timeline.Document, error) {
	if path == "" {
		return timeline.ParseDocument([]byte(demoDocument))
	}
	return timeline.LoadDocument(path)
}

// fontConfig selects the label font and how labels are measured.
type fontConfig struct {
	name   string
	size   float64
	shaper string
}

// load returns the measurer and face for fc. Both come from the same font
// so laid out widths match what is drawn.
func (fc fontConfig) load(logger *slog.Logger) (text.Measurer, font.Face, error) {
	src, err := text.DefaultSource()
	if fc.name != "" {
		src, err = text.FindFontSource(fc.name)
	}
	if err != nil {
		return nil, nil, err
	}

	var m text.Measurer
	switch fc.shaper {
	case "ximage", "":
		m, err = text.NewXImageMeasurer(src, fc.size)
	case "harfbuzz":
		m, err = text.NewGoTextMeasurer(src, fc.size)
	default:
		return nil, nil, fmt.Errorf("unknown shaper %q", fc.shaper)
	}
	if err != nil {
		return nil, nil, err
	}

	face, err := src.Face(fc.size)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("label font", "family", src.Name(), "size", fc.size, "shaper", fc.shaper)
	return m, face, nil
}

func run(doc *timeline.Document, output string, fc fontConfig, logger *slog.Logger) error {
	measurer, face, err := fc.load(logger)
	if err != nil {
		return err
	}

	root := canvas.NewGroup(nil, canvas.Point{})
	ruler := doc.Build(root, marker.WithMeasurer(measurer))
	defer ruler.Close()

	r, err := raster.New(raster.WithFace(face), raster.WithBackground(canvas.Hex("#202020")))
	if err != nil {
		return err
	}
	img := image.NewRGBA(image.Rect(0, 0, doc.Width, doc.Height))
	r.Render(img, root)

	if err := writePNG(output, img); err != nil {
		return err
	}
	logger.Info("rendered timeline",
		"output", output,
		"markers", len(ruler.Markers()),
		"size", fmt.Sprintf("%dx%d", doc.Width, doc.Height),
		"profile", doc.Profile.String())
	return nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path) //nolint:gosec // caller-provided output path
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
