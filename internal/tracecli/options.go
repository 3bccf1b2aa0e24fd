package tracecli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"lightclock/internal/clibase"
)

// Options holds the diagnostic binary's flags. Defaults mirror the renderer's
// compiled-in constants, so a bare run traces exactly the frames the renderer
// would draw.
type Options struct {
	// Physics
	Beta    float64
	Gap     float64
	RestX   float64
	MovingX float64

	// Timing
	DT   float64
	TMax float64

	// Output
	Every  int
	Output string // text|json|jsonl
	Header bool   // true unless --no-header
	Pretty bool

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with the shared usage layout.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "light-clock kinematics tracer", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "\nUsage:")
		_, _ = fmt.Fprintf(out, "  %s [options]\n", name)
		_, _ = fmt.Fprintf(out, "  %s --beta 0.8 --dt 0.1 --output jsonl | head\n", name)

		_, _ = fmt.Fprintln(out, "\nPhysics:")
		_, _ = fmt.Fprintf(out, "      --beta float           Moving clock speed v/c, in [0, 1) [%s]\n", def("beta"))
		_, _ = fmt.Fprintf(out, "      --gap float            Mirror separation L (light-seconds) [%s]\n", def("gap"))
		_, _ = fmt.Fprintf(out, "      --rest-x float         Stationary clock x [%s]\n", def("rest-x"))
		_, _ = fmt.Fprintf(out, "      --moving-x float       Moving clock x at t=0 [%s]\n", def("moving-x"))

		_, _ = fmt.Fprintln(out, "\nTiming:")
		_, _ = fmt.Fprintf(out, "      --dt float             Seconds of lab time per frame [%s]\n", def("dt"))
		_, _ = fmt.Fprintf(out, "      --t-max float          Last simulated instant [%s]\n", def("t-max"))

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintf(out, "  -o, --output string        Output: text | json | jsonl [%s]\n", def("output"))
		_, _ = fmt.Fprintf(out, "      --every int            Keep one frame in N [%s]\n", def("every"))
		_, _ = fmt.Fprintf(out, "      --pretty               ASCII frame block after each row (text) [%s]\n", def("pretty"))
		_, _ = fmt.Fprintf(out, "      --no-header            Suppress TSV header line [%s]\n", def("no-header"))
		_, _ = fmt.Fprintf(out, "  -q, --quiet                Suppress non-essential warnings [%s]\n", def("quiet"))
		_, _ = fmt.Fprintln(out, "      --examples             Print quickstart examples and exit")
	})
	return fs
}

// PrintExamples writes the quickstart block shown by --examples.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  %s                          # TSV trace of the default run\n", name)
		_, _ = fmt.Fprintf(w, "  %s --every 50 --pretty      # sparse rows with ASCII frames\n", name)
		_, _ = fmt.Fprintf(w, "  %s --beta 0.8 -o jsonl      # stream frames as JSON lines\n", name)
	})
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, examples, noHeader bool

	fs.Float64Var(&o.Beta, "beta", 0.6, "moving clock speed v/c")
	fs.Float64Var(&o.Gap, "gap", 1.0, "mirror separation L")
	fs.Float64Var(&o.RestX, "rest-x", 1.0, "stationary clock x")
	fs.Float64Var(&o.MovingX, "moving-x", 3.0, "moving clock x at t=0")

	fs.Float64Var(&o.DT, "dt", 0.02, "seconds per frame")
	fs.Float64Var(&o.TMax, "t-max", 10.0, "last simulated instant")

	fs.IntVar(&o.Every, "every", 1, "keep one frame in N")
	fs.StringVar(&o.Output, "output", "text", "output: text | json | jsonl")
	fs.StringVar(&o.Output, "o", "text", "alias of --output")
	fs.BoolVar(&o.Pretty, "pretty", false, "ASCII frame block after each row (text)")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "v", false, "print version and exit")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help")
	fs.BoolVar(&examples, "examples", false, "print quickstart examples and exit")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if examples {
		return o, clibase.ErrPrintedAndExitOK
	}

	o.Header = !noHeader

	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q (all inputs are flags)", fs.Arg(0))
	}
	if o.Every < 1 {
		return o, fmt.Errorf("--every must be >= 1")
	}
	switch strings.ToLower(o.Output) {
	case "text", "json", "jsonl":
		o.Output = strings.ToLower(o.Output)
	default:
		return o, fmt.Errorf("invalid --output %q (text | json | jsonl)", o.Output)
	}
	if o.Pretty && o.Output != "text" {
		return o, fmt.Errorf("--pretty applies to text output only")
	}
	// Physical and timing bounds are validated by the core constructors;
	// the CLI layer only rejects what they cannot express.
	return o, nil
}
