// core/icgr/encode.go
package icgr

import (
	"errors"
	"math/big"
)

// EncodeChunk runs the integer chaos-game recurrence over one chunk.
// Position 0 seeds the running point with the vertex of the first symbol;
// every later position i adds 2^i times the vertex of the symbol at i.
//
// In strict mode a non-canonical symbol aborts with
// *UnknownNucleotideError. In permissive mode it contributes a zero vertex
// but still consumes position i, so the exponents of all later symbols are
// unchanged; such chunks do not round-trip symbol-exact.
//
// Chunks are independent: EncodeChunk shares no state between calls and is
// safe to run concurrently over disjoint chunks.
func EncodeChunk(chunk []byte, strict bool) (TriInteger, error) {
	if len(chunk) == 0 {
		return TriInteger{}, errors.New("icgr: empty chunk")
	}

	x := new(big.Int)
	y := new(big.Int)
	pow := big.NewInt(1) // 2^i

	for i := 0; i < len(chunk); i++ {
		v, ok := VertexOf(chunk[i])
		if !ok {
			if strict {
				return TriInteger{}, &UnknownNucleotideError{Char: chunk[i], Pos: i}
			}
			v = Vertex{} // no displacement; the position is still consumed
		}
		if i == 0 {
			x.SetInt64(int64(v.X))
			y.SetInt64(int64(v.Y))
			continue
		}
		pow.Lsh(pow, 1)
		switch {
		case v.X > 0:
			x.Add(x, pow)
		case v.X < 0:
			x.Sub(x, pow)
		}
		switch {
		case v.Y > 0:
			y.Add(y, pow)
		case v.Y < 0:
			y.Sub(y, pow)
		}
	}

	return TriInteger{X: x, Y: y, N: len(chunk)}, nil
}
