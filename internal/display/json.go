package display

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes one JSON object per flushed view.
type JSON struct {
	frame
	enc *json.Encoder
}

// NewJSON creates a JSON lines sink.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// Flush writes the current view as a single line.
func (j *JSON) Flush() error {
	if err := j.enc.Encode(j.view); err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}

	return nil
}
