package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/inscribe"
	"github.com/osuushi/inscribe/animate"
	"github.com/osuushi/inscribe/render"
)

// Demo of the expansion engine. Rotates an outer polygon around a fixed inner
// one, fits it tightly at each orientation, and writes a PNG per frame along
// with a graph of how the area ratio changes with the angle.
func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
}

// Flag values. Zero means the flag was not given, and the config value stands.
type options struct {
	configPath  string
	innerSides  int
	innerRadius float64
	outerSides  int
	frames      int
	delay       time.Duration
	out         string
	svg         bool
	preview     bool
	debug       bool
}

func parseOptions(args []string) (options, error) {
	var opts options
	app := kingpin.New("inscribe", "Fit a rotating regular polygon tightly around another.")
	app.Flag("config", "YAML scenario file.").Short('c').StringVar(&opts.configPath)
	app.Flag("inner-sides", "Side count of the inner polygon.").IntVar(&opts.innerSides)
	app.Flag("inner-radius", "Circumradius of the inner polygon.").Float64Var(&opts.innerRadius)
	app.Flag("outer-sides", "Side count of the outer polygon.").IntVar(&opts.outerSides)
	app.Flag("frames", "Number of orientations to sample.").IntVar(&opts.frames)
	app.Flag("delay", "Wait between frames.").DurationVar(&opts.delay)
	app.Flag("out", "Directory for frame images.").Short('o').StringVar(&opts.out)
	app.Flag("svg", "Write an SVG next to each PNG.").BoolVar(&opts.svg)
	app.Flag("preview", "Print each frame to the terminal (iTerm).").BoolVar(&opts.preview)
	app.Flag("debug", "Log every expansion step.").BoolVar(&opts.debug)
	_, err := app.Parse(args)
	return opts, err
}

func (opts options) config() (Config, error) {
	config := DefaultConfig()
	if opts.configPath != "" {
		var err error
		if config, err = LoadConfig(opts.configPath); err != nil {
			return config, err
		}
	}

	if opts.innerSides != 0 {
		config.Inner.Sides = opts.innerSides
	}
	if opts.innerRadius != 0 {
		config.Inner.Radius = opts.innerRadius
	}
	if opts.outerSides != 0 {
		config.Outer.Sides = opts.outerSides
	}
	if opts.frames != 0 {
		config.Frames.End = config.Frames.Start + opts.frames
	}
	if opts.delay != 0 {
		config.Delay = opts.delay.String()
	}
	if opts.out != "" {
		config.Output.Dir = opts.out
	}
	if opts.svg {
		config.Output.SVG = true
	}
	return config, config.Validate()
}

type sample struct {
	angle, ratio float64
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	level := slog.LevelWarn
	if opts.debug {
		level = slog.LevelDebug
	}
	inscribe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	config, err := opts.config()
	if err != nil {
		return err
	}
	sampler, err := config.Sampler()
	if err != nil {
		return err
	}
	delay, err := config.DelayDuration()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(config.Output.Dir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	driver := animate.NewDriver()
	driver.Delay = delay
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	samples := make([]sample, 0, sampler.Len())

	err = driver.Animate(ctx, sampler, func(frame animate.Frame) error {
		samples = append(samples, sample{frame.Angle, frame.Ratio})
		fmt.Fprintf(stdout, "%s  angle %s  ratio %s  %s\n",
			aurora.Cyan(fmt.Sprintf("frame %3d", frame.Index)),
			aurora.Bold(fmt.Sprintf("%.4f", frame.Angle)),
			aurora.Green(fmt.Sprintf("%.4f", frame.Ratio)),
			aurora.Faint(fmt.Sprintf("(%d iterations)", frame.Iterations)),
		)
		return drawFrame(config, frame, render.RandomColor(rng), opts.preview, stdout)
	})
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(stdout, aurora.Yellow("interrupted"))
		err = nil
	}
	if err != nil {
		return err
	}
	return drawGraph(config, samples)
}

func drawFrame(config Config, frame animate.Frame, fill color.Color, preview bool, stdout io.Writer) error {
	out := config.Output
	canvas := render.NewCanvas(out.Width, out.Height, out.Scale)
	canvas.FillPolygon(frame.Expanded, color.RGBA{40, 40, 40, 255})
	canvas.StrokePolygon(frame.Outer, color.RGBA{90, 90, 90, 255}, 1)
	canvas.FillPolygon(frame.Inner, fill)
	canvas.StrokePolygon(frame.Expanded, color.White, 2)
	canvas.Mark(frame.Expanded.Center(), color.RGBA{255, 0, 0, 255})

	base := filepath.Join(out.Dir, fmt.Sprintf("frame_%03d", frame.Index))
	if err := canvas.SavePNG(base + ".png"); err != nil {
		return err
	}
	if out.SVG {
		if err := writeFrameSVG(base+".svg", config, frame); err != nil {
			return err
		}
	}
	if preview {
		return canvas.Preview(stdout)
	}
	return nil
}

func writeFrameSVG(path string, config Config, frame animate.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating svg")
	}
	defer f.Close()

	out := config.Output
	render.WriteSVG(f, float64(out.Width), float64(out.Height), out.Scale,
		render.Shape{Polygon: frame.Outer, Role: "template", Style: "fill:none;stroke:gray;stroke-width:1"},
		render.Shape{Polygon: frame.Expanded, Role: "expanded"},
		render.Shape{Polygon: frame.Inner, Role: "inner", Style: "fill:steelblue"},
	)
	return errors.Wrap(f.Close(), "writing svg")
}

func drawGraph(config Config, samples []sample) error {
	if len(samples) == 0 {
		return nil
	}
	maxRatio := 1.0
	for _, s := range samples {
		maxRatio = math.Max(maxRatio, s.ratio)
	}
	graph, err := render.NewGraph(800, 400, math.Max(maxRatio*1.1, 1.5))
	if err != nil {
		return err
	}
	for _, s := range samples {
		graph.Plot(s.angle, s.ratio, color.RGBA{200, 30, 30, 255})
	}
	return graph.SavePNG(filepath.Join(config.Output.Dir, "graph.png"))
}
