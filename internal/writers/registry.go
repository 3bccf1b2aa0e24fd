// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"lightclock-core/scene"
)

// Options carry the per-format rendering knobs.
type Options struct {
	Header bool // emit the TSV header (text only)
	Pretty bool // append an ASCII frame block after each row (text only)
}

// StartFunc spins up a writer goroutine for one format. The goroutine drains
// the channel even after a write error, so producers never block; the first
// error is delivered on the returned channel after close.
type StartFunc func(out io.Writer, opt Options, bufSize int) (chan<- scene.Frame, <-chan error)

var registry = map[string]StartFunc{}

// Register installs a format handler (last registration wins).
func Register(format string, fn StartFunc) { registry[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Start dispatches to the registered handler. An unknown format yields a
// drain-only writer whose error channel reports the problem, keeping the
// producer/consumer contract uniform for callers.
func Start(out io.Writer, format string, opt Options, bufSize int) (chan<- scene.Frame, <-chan error) {
	if fn, ok := registry[format]; ok {
		return fn(out, opt, bufSize)
	}
	in := make(chan scene.Frame)
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unsupported output %q (have %v)", format, Formats())
	}()
	return in, errCh
}
