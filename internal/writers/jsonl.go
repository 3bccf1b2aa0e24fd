// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"lightclock-core/scene"

	"lightclock/internal/jsonlutil"
	"lightclock/internal/output"
)

func init() {
	Register(output.FormatJSONL, startJSONL)
}

// startJSONL streams each frame as one JSON line (v1).
func startJSONL(out io.Writer, _ Options, bufSize int) (chan<- scene.Frame, <-chan error) {
	return jsonlutil.Start[scene.Frame](out, bufSize,
		func(enc *json.Encoder, f scene.Frame) error {
			return enc.Encode(output.ToAPIFrame(f))
		},
		IsBrokenPipe,
	)
}
