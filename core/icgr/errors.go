// core/icgr/errors.go
package icgr

import "fmt"

// UnknownNucleotideError reports a non-canonical symbol rejected by a
// strict-mode encode. Fatal to the record it occurs in, never retried.
type UnknownNucleotideError struct {
	Char byte
	Pos  int
}

func (e *UnknownNucleotideError) Error() string {
	return fmt.Sprintf("unknown nucleotide %q at position %d", e.Char, e.Pos)
}
