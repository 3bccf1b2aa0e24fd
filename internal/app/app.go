// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap/zapcore"

	"lightclock-core/kinematics"
	"lightclock-core/scene"

	"lightclock/internal/clibase"
	"lightclock/internal/logging"
	"lightclock/internal/output"
	"lightclock/internal/pipeline"
	"lightclock/internal/render"
	"lightclock/internal/version"
	"lightclock/internal/writers"
)

// RunContext renders the animation and writes the HTML artifact.
// Exit codes: 0 ok, 2 usage/config error, 3 render/write error, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lightclock", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	clibase.UsageCommon(fs, "lightclock", "relativistic light-clock animator", func(out io.Writer, _ func(string) string) {
		_, _ = fmt.Fprintln(out, "\nUsage:")
		_, _ = fmt.Fprintln(out, "  lightclock")
		_, _ = fmt.Fprintln(out, "\nRenders two photon-bounce clocks, one at rest and one moving at")
		_, _ = fmt.Fprintf(out, "v/c = %.2f, and writes the animation to %s.\n", Beta, OutputPath)
		_, _ = fmt.Fprintln(out, "All parameters are compiled in; there is nothing to configure.")
	})

	var showVersion, help bool
	fs.BoolVar(&showVersion, "v", false, "print version and exit")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if help {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}
	if showVersion {
		_, _ = fmt.Fprintf(stdout, "lightclock version %s\n", version.Version)
		return 0
	}
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "error: unexpected argument %q (all parameters are compiled in)\n", fs.Arg(0))
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	log, flush := logging.New(logging.Config{File: LogFile, Level: zapcore.InfoLevel}, stderr)
	defer flush()

	model, err := kinematics.New(kinematics.Config{
		MirrorGap:   MirrorGap,
		Beta:        Beta,
		RestX:       RestX,
		MovingX0:    MovingX0,
		MirrorWidth: MirrorWidth,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	sc, err := scene.New(model, scene.Timing{DT: DT, TMax: TMax})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	log.Infow("rendering run",
		"frames", sc.FrameCount(),
		"beta", Beta,
		"gamma", model.Gamma(),
		"rest_period", model.RestPeriod(),
		"moving_period", model.MovingPeriod(),
	)

	r := render.New(CanvasWidth, CanvasHeight, sc)
	frames := make([]string, 0, sc.FrameCount())
	err = pipeline.ForEachFrame(parent, sc, func(f scene.Frame) error {
		uri, uerr := output.PNGDataURI(r.Draw(f))
		if uerr != nil {
			return uerr
		}
		frames = append(frames, uri)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}

	page, err := output.BuildHTML(output.Page{
		Title:        "Relativistic light clocks",
		Beta:         Beta,
		Gamma:        model.Gamma(),
		RestPeriod:   model.RestPeriod(),
		MovingPeriod: model.MovingPeriod(),
		Width:        CanvasWidth,
		Height:       CanvasHeight,
		IntervalMS:   int(DT * 1000),
		Frames:       frames,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}
	if err := writers.WriteFileAtomic(OutputPath, page, 0o644); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}

	log.Infow("artifact written", "path", OutputPath, "bytes", len(page))
	_, _ = fmt.Fprintf(stdout, "lightclock: wrote %s (%d frames, %d bytes)\n", OutputPath, len(frames), len(page))
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
