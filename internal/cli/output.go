package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/useragentkit/internal/inspector"
	"github.com/dmitrymomot/useragentkit/pkg/useragent"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// encoder writes a stream of values in one output format.
type encoder interface {
	Encode(ua useragent.UserAgent) error
	Close() error
}

func newEncoder(w io.Writer, format string) (encoder, error) {
	switch format {
	case outputText:
		return &textEncoder{w: w}, nil
	case outputJSON:
		return &jsonEncoder{enc: json.NewEncoder(w)}, nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlEncoder{enc: enc}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q: must be %q, %q or %q", format, outputText, outputJSON, outputYAML)
}

type textEncoder struct{ w io.Writer }

func (e *textEncoder) Encode(ua useragent.UserAgent) error {
	_, err := fmt.Fprintln(e.w, ua.String())
	return err
}

func (e *textEncoder) Close() error { return nil }

// jsonEncoder writes one object per line.
type jsonEncoder struct{ enc *json.Encoder }

func (e *jsonEncoder) Encode(ua useragent.UserAgent) error { return e.enc.Encode(inspector.NewSignature(ua)) }
func (e *jsonEncoder) Close() error                        { return nil }

// yamlEncoder writes one document per value.
type yamlEncoder struct{ enc *yaml.Encoder }

func (e *yamlEncoder) Encode(ua useragent.UserAgent) error { return e.enc.Encode(inspector.NewSignature(ua)) }
func (e *yamlEncoder) Close() error                        { return e.enc.Close() }
