package xer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// NewDecodingReader re-encodes r from the named character set to UTF-8 so its
// lines can be handed to a Scanner. Exports written by older scheduling tools
// commonly arrive as windows-1252 or windows-1251. Character set names are
// resolved through the IANA registry ("windows-1252", "ISO-8859-1", ...).
//
// For "utf-8" (or an empty name) the input is passed through with validation:
// reads fail on the first invalid byte sequence instead of smuggling
// replacement characters into the parsed tables.
func NewDecodingReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return transform.NewReader(r, encoding.UTF8Validator), nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported character set %q", charset)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
