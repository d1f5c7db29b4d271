// Package format renders decoded tables to an output stream. Encoders are
// streaming: Encode is called once per table, in the order the scanner
// yields them.
package format

import "github.com/dhamidi/xer"

type Encoder interface {
	Encode(t *xer.Table) error
}
