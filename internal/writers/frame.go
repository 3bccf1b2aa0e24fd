// internal/writers/frame.go
package writers

import (
	"fmt"
	"io"

	"lightclock-core/scene"

	"lightclock/internal/output"
	"lightclock/internal/pretty"
)

func init() {
	Register(output.FormatText, startText)
	Register(output.FormatJSON, startJSON)
}

// startText streams one TSV row per frame, header first, with an optional
// ASCII frame block after each row.
func startText(out io.Writer, opt Options, bufSize int) (chan<- scene.Frame, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan scene.Frame, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		headerPending := opt.Header
		for f := range in {
			if err != nil {
				continue // drain
			}
			if headerPending {
				headerPending = false
				if _, err = fmt.Fprintln(out, output.TSVHeader); err != nil {
					continue
				}
			}
			if _, err = fmt.Fprintln(out, output.FormatRowTSV(f)); err != nil {
				continue
			}
			if opt.Pretty {
				_, err = io.WriteString(out, pretty.RenderFrame(f, pretty.DefaultOptions))
			}
		}
		errCh <- err
	}()

	return in, errCh
}

// startJSON buffers the run and writes a single pretty-printed array.
// Frame order is already deterministic, so no sorting pass is needed.
func startJSON(out io.Writer, _ Options, bufSize int) (chan<- scene.Frame, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan scene.Frame, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []scene.Frame
		for f := range in {
			buf = append(buf, f)
		}
		errCh <- output.WriteJSON(out, buf)
	}()

	return in, errCh
}
