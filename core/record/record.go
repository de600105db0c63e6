// core/record/record.go
package record

import (
	"fmt"
	"io"

	"icgr-core/icgr"
)

// Record is one encoded sequence: its identity, the overlap width its
// chunks were split with, and the per-chunk tri-integers in sequence
// order. Created once at encode time, written once, read back whole at
// decode time.
type Record struct {
	ID          string
	Description string
	Overlap     int
	Triples     icgr.TriIntegerList
}

// Header is the comment line written at the top of a BICGR stream.
// Readers skip it (and any other '#' line).
const Header = "#seq_id\tdescription\toverlap\ttri_integers"

// Write emits the record as a single tab-separated line.
func (r Record) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.ID, r.Description, r.Overlap, r.Triples)
	return err
}
