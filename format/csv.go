package format

import (
	"encoding/csv"
	"io"

	"github.com/dhamidi/xer"
)

// CSVEncoder writes each table as a CSV block: the header record followed by
// the data records. Rows narrower than the header are padded with empty
// fields so every block is rectangular.
type CSVEncoder struct {
	w io.Writer
}

func NewCSVEncoder(w io.Writer) *CSVEncoder {
	return &CSVEncoder{w: w}
}

func (e *CSVEncoder) Encode(t *xer.Table) error {
	cw := csv.NewWriter(e.w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, r := range t.Rows {
		rec := []string(r)
		if len(rec) < len(t.Header) {
			padded := make([]string, len(t.Header))
			copy(padded, rec)
			rec = padded
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
