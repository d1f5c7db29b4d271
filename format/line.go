package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/xer"
)

// LineEncoder writes a one-line summary per table: name, column count, and
// row count.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(t *xer.Table) error {
	_, err := fmt.Fprintf(e.w, "%15s %3d columns %6d rows\n", t.Name, len(t.Header), len(t.Rows))
	return err
}
