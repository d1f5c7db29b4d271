package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/xer"
)

// charset is shared by every subcommand via the root --charset flag.
var charset string

// openScanner opens path and attaches a scanner behind the charset decoding
// step. The returned func closes the file.
func openScanner(path string) (*xer.Scanner, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open export: %w", err)
	}
	r, err := xer.NewDecodingReader(f, charset)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return xer.NewScanner(r), f.Close, nil
}
