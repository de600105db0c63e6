// core/icgr/triple.go
package icgr

import (
	"math/big"
	"strconv"
	"strings"
)

// TriInteger is the exact encoding of one chunk: the final chaos-game
// coordinate pair plus the chunk length. The magnitude of X and Y is
// bounded by 2^N. Produced once by EncodeChunk, immutable afterwards.
type TriInteger struct {
	X *big.Int
	Y *big.Int
	N int
}

func (t TriInteger) String() string {
	var b strings.Builder
	b.WriteString(t.X.String())
	b.WriteByte(',')
	b.WriteString(t.Y.String())
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(t.N))
	return b.String()
}

// TriIntegerList holds the per-chunk encoding of one sequence, in original
// chunk order.
type TriIntegerList []TriInteger

// TotalLength is the sum of the chunk lengths, overlaps included.
func (l TriIntegerList) TotalLength() int {
	n := 0
	for _, t := range l {
		n += t.N
	}
	return n
}

// DecodedLength is the length of the sequence the list decodes to once the
// shared overlap symbols between adjacent chunks are trimmed.
func (l TriIntegerList) DecodedLength(overlap int) int {
	if len(l) == 0 {
		return 0
	}
	return l.TotalLength() - overlap*(len(l)-1)
}

func (l TriIntegerList) String() string {
	parts := make([]string, len(l))
	for i, t := range l {
		parts[i] = t.String()
	}
	return strings.Join(parts, ";")
}
