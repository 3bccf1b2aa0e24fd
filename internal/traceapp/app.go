package traceapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"lightclock-core/kinematics"
	"lightclock-core/scene"

	"lightclock/internal/clibase"
	"lightclock/internal/cmdutil"
	"lightclock/internal/runutil"
	"lightclock/internal/tracecli"
	"lightclock/internal/version"
	"lightclock/internal/visitors"
	"lightclock/internal/writers"
)

// RunContext dumps per-frame kinematics to stdout in the selected format.
// Exit codes: 0 ok, 2 usage/config error, 3 write error, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := tracecli.NewFlagSet("lightclock-trace")
	fs.SetOutput(io.Discard)

	opts, err := tracecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			tracecli.PrintExamples(outw, "lightclock-trace")
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "lightclock-trace version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	model, err := kinematics.New(kinematics.Config{
		MirrorGap: opts.Gap,
		Beta:      opts.Beta,
		RestX:     opts.RestX,
		MovingX0:  opts.MovingX,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	sc, err := scene.New(model, scene.Timing{DT: opts.DT, TMax: opts.TMax})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	for _, w := range runutil.CheckTiming(opts.DT, opts.TMax) {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	inCh, writeErr := writers.Start(outw, opts.Output, writers.Options{
		Header: opts.Header,
		Pretty: opts.Pretty,
	}, 64)

	visitor := visitors.Every{N: opts.Every}
	_, perr := cmdutil.RunStream(ctx, sc, visitor.Visit,
		func(f scene.Frame) error {
			select {
			case inCh <- f:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
