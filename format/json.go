package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/xer"
)

// JSONEncoder writes each table as one indented JSON object.
type JSONEncoder struct {
	enc *json.Encoder
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONEncoder{enc: enc}
}

type jsonTable struct {
	Name   string     `json:"name"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func (e *JSONEncoder) Encode(t *xer.Table) error {
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r
	}
	return e.enc.Encode(jsonTable{
		Name:   t.Name,
		Header: t.Header,
		Rows:   rows,
	})
}
