// internal/output/html.go
package output

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"
	"image/png"

	_ "embed"
)

//go:embed page.tmpl
var pageSrc string

var pageTmpl = template.Must(template.New("page").Parse(pageSrc))

// Page is everything the HTML template needs for the final artifact.
type Page struct {
	Title        string
	Beta         float64
	Gamma        float64
	RestPeriod   float64
	MovingPeriod float64
	Width        int
	Height       int
	IntervalMS   int      // base playback interval per frame
	Frames       []string // PNG data URIs, frame 0 first
}

// PNGDataURI encodes img as a base64 PNG data URI suitable for an <img> src.
func PNGDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode frame: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// BuildHTML renders the self-contained page: every frame embedded, a JS
// player that stops on the last frame (repeat is deliberately disabled).
func BuildHTML(p Page) ([]byte, error) {
	if len(p.Frames) == 0 {
		return nil, fmt.Errorf("build html: no frames")
	}
	if p.IntervalMS <= 0 {
		p.IntervalMS = 20
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("build html: %w", err)
	}
	return buf.Bytes(), nil
}
