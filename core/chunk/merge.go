// core/chunk/merge.go
package chunk

import (
	"bytes"
	"fmt"
)

// OverlapMismatchError reports disagreement at the seam of two adjacent
// decoded chunks: corruption confined to one stored triple.
type OverlapMismatchError struct {
	Index    int    // chunk whose head failed the check
	Expected string // tail of the previous chunk
	Actual   string // head of the offending chunk
}

func (e *OverlapMismatchError) Error() string {
	return fmt.Sprintf("chunk %d: overlap mismatch: expected %q, got %q", e.Index, e.Expected, e.Actual)
}

// ChunkTooShortError reports a decoded chunk with fewer symbols than the
// record's overlap width. A well-formed encode cannot produce one except
// as the final chunk, so this indicates a truncated or corrupted record.
type ChunkTooShortError struct {
	Index   int
	Len     int
	Overlap int
}

func (e *ChunkTooShortError) Error() string {
	return fmt.Sprintf("chunk %d: %d symbols, too short for overlap %d", e.Index, e.Len, e.Overlap)
}

// LengthMismatchError reports a merged sequence whose length disagrees
// with the lengths stored in the record's triples. Distinct from
// OverlapMismatchError: the seams agreed, yet symbols were lost or
// invented somewhere.
type LengthMismatchError struct {
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("merged sequence is %d symbols, want %d", e.Got, e.Want)
}

// Merge stitches decoded chunks back into one sequence. Chunk 0 is taken
// verbatim; each later chunk must repeat the previous chunk's last overlap
// symbols at its head and contributes only the symbols beyond them.
// Merge is inherently sequential: each seam check depends on the previous
// chunk's content.
func Merge(chunks [][]byte, overlap int) ([]byte, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	out := make([]byte, 0, total)
	out = append(out, chunks[0]...)

	for i := 1; i < len(chunks); i++ {
		prev, cur := chunks[i-1], chunks[i]
		if len(prev) < overlap {
			return nil, &ChunkTooShortError{Index: i - 1, Len: len(prev), Overlap: overlap}
		}
		if len(cur) < overlap {
			return nil, &ChunkTooShortError{Index: i, Len: len(cur), Overlap: overlap}
		}
		tail := prev[len(prev)-overlap:]
		head := cur[:overlap]
		if !bytes.Equal(tail, head) {
			return nil, &OverlapMismatchError{Index: i, Expected: string(tail), Actual: string(head)}
		}
		out = append(out, cur[overlap:]...)
	}
	return out, nil
}
