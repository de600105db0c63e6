// core/icgr/decode.go
package icgr

import (
	"errors"
	"fmt"
	"math/big"
)

// DecodeTriple reconstructs the chunk encoded by t, peeling one vertex off
// the running coordinates per step, most recent position first. The sign
// pattern at step i equals the vertex contributed at i: the displacement
// 2^i strictly dominates the residual left by all earlier steps, so sign
// alone recovers the symbol. A sign pair of (0,0) decodes to 'N'; only a
// permissive-mode encode of non-canonical input can produce it.
func DecodeTriple(t TriInteger) ([]byte, error) {
	if t.N < 1 {
		return nil, fmt.Errorf("icgr: invalid chunk length %d", t.N)
	}
	if t.X == nil || t.Y == nil {
		return nil, errors.New("icgr: triple has nil coordinates")
	}

	a := new(big.Int).Set(t.X)
	b := new(big.Int).Set(t.Y)
	pow := new(big.Int).Lsh(big.NewInt(1), uint(t.N-1)) // 2^index, counting down

	seq := make([]byte, t.N)
	for index := t.N - 1; index >= 0; index-- {
		sx, sy := a.Sign(), b.Sign()
		seq[index] = NucleotideOf(sx, sy)
		if index == 0 {
			break
		}
		v := VertexOfSigns(sx, sy)
		switch {
		case v.X > 0:
			a.Sub(a, pow)
		case v.X < 0:
			a.Add(a, pow)
		}
		switch {
		case v.Y > 0:
			b.Sub(b, pow)
		case v.Y < 0:
			b.Add(b, pow)
		}
		pow.Rsh(pow, 1)
	}
	return seq, nil
}
