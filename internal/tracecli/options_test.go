package tracecli

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"lightclock/internal/clibase"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("lightclock-trace")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgs_Defaults(t *testing.T) {
	o, err := parse(t)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.Beta != 0.6 || o.Gap != 1.0 || o.DT != 0.02 || o.TMax != 10.0 {
		t.Fatalf("physics/timing defaults: %+v", o)
	}
	if o.Output != "text" || !o.Header || o.Every != 1 || o.Pretty {
		t.Fatalf("output defaults: %+v", o)
	}
}

func TestParseArgs_NoHeader(t *testing.T) {
	o, err := parse(t, "--no-header")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.Header {
		t.Fatal("--no-header did not clear Header")
	}
}

func TestParseArgs_OutputValidation(t *testing.T) {
	if _, err := parse(t, "--output", "yaml"); err == nil || !strings.Contains(err.Error(), "invalid --output") {
		t.Fatalf("err = %v", err)
	}
	o, err := parse(t, "-o", "JSONL")
	if err != nil {
		t.Fatalf("case-insensitive format rejected: %v", err)
	}
	if o.Output != "jsonl" {
		t.Fatalf("format not normalized: %q", o.Output)
	}
}

func TestParseArgs_PrettyNeedsText(t *testing.T) {
	if _, err := parse(t, "--pretty", "-o", "json"); err == nil || !strings.Contains(err.Error(), "text output only") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseArgs_EveryBounds(t *testing.T) {
	if _, err := parse(t, "--every", "0"); err == nil || !strings.Contains(err.Error(), "--every") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseArgs_RejectsPositionals(t *testing.T) {
	if _, err := parse(t, "trace.tsv"); err == nil || !strings.Contains(err.Error(), "unexpected argument") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseArgs_Help(t *testing.T) {
	if _, err := parse(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}

func TestParseArgs_Examples(t *testing.T) {
	if _, err := parse(t, "--examples"); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("err = %v, want ErrPrintedAndExitOK", err)
	}
}

func TestPrintExamples(t *testing.T) {
	var buf strings.Builder
	PrintExamples(&buf, "lightclock-trace")
	if !strings.Contains(buf.String(), "quickstart") || !strings.Contains(buf.String(), "--every 50") {
		t.Fatalf("examples output: %q", buf.String())
	}
}
