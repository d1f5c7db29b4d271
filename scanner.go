package xer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line tags. The first tab-separated field of a line decides what it is;
// anything else is preamble or filler and gets skipped.
const (
	tagTable  = "%T"
	tagHeader = "%F"
	tagRow    = "%R"
	tagEnd    = "%E"
)

// Scanner decodes tables from an export one at a time. It is a forward-only
// cursor over the underlying reader: each call to Next consumes exactly the
// lines of one table and leaves the reader positioned at the next unconsumed
// line. Two scanners must not share one reader.
type Scanner struct {
	lines   *bufio.Scanner
	lineNum int
	pending []string
	done    bool
}

// NewScanner returns a Scanner reading from r. The input must already be
// UTF-8; see NewDecodingReader for exports in a legacy character set.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	// Rows in large exports routinely exceed bufio's default line limit.
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Scanner{lines: s}
}

// Next returns the next table in the export. It returns io.EOF after the last
// table, whether the export ends with an %E marker or just runs out of lines.
// A FormatError aborts the scan; calling Next again after any error is not
// supported.
func (s *Scanner) Next() (*Table, error) {
	if s.done {
		return nil, io.EOF
	}

	start, err := s.seekTableStart()
	if err != nil {
		return nil, err
	}
	if len(start) < 2 || start[1] == "" {
		return nil, &FormatError{Line: s.lineNum, Err: ErrMissingName}
	}
	table := &Table{Name: start[1]}

	header, err := s.read()
	if err == io.EOF || (err == nil && header[0] != tagHeader) {
		return nil, &FormatError{Line: s.lineNum, Err: ErrMissingHeader}
	}
	if err != nil {
		return nil, fmt.Errorf("read line %d: %w", s.lineNum+1, err)
	}
	table.Header = header[1:]

	for {
		fields, err := s.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", s.lineNum+1, err)
		}
		if fields[0] != tagRow {
			// Leave the line for the next call; it is the next table's
			// start tag or the end marker.
			s.unread(fields)
			break
		}
		table.Rows = append(table.Rows, Row(fields[1:]))
	}

	return table, nil
}

// seekTableStart discards lines until a %T line. The file's metadata line and
// anything else before the first table fall through the default case. A row
// tag here means the file opens mid-table or a row came loose from its table.
func (s *Scanner) seekTableStart() ([]string, error) {
	for {
		fields, err := s.read()
		if err == io.EOF {
			s.done = true
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", s.lineNum+1, err)
		}
		switch fields[0] {
		case tagTable:
			return fields, nil
		case tagEnd:
			s.done = true
			return nil, io.EOF
		case tagRow:
			return nil, &FormatError{Line: s.lineNum, Err: ErrOrphanRow}
		}
	}
}

// read returns the fields of the next line, favoring a line pushed back by
// unread. It reports io.EOF at end of input and any reader error verbatim.
func (s *Scanner) read() ([]string, error) {
	if s.pending != nil {
		fields := s.pending
		s.pending = nil
		return fields, nil
	}
	if !s.lines.Scan() {
		if err := s.lines.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	s.lineNum++
	return strings.Split(s.lines.Text(), "\t"), nil
}

func (s *Scanner) unread(fields []string) {
	s.pending = fields
}

// ReadAll decodes every table in the export eagerly. Prefer iterating a
// Scanner for large files.
func ReadAll(r io.Reader) ([]*Table, error) {
	s := NewScanner(r)
	var tables []*Table
	for {
		t, err := s.Next()
		if err == io.EOF {
			return tables, nil
		}
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
}
