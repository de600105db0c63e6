// Package icgr implements the Integer Chaos Game Representation codec:
// an exactly-reversible numeric encoding of DNA sequences.
//
// A chunk of n nucleotides becomes one TriInteger (x, y, n) by iterating
// the chaos-game recurrence in exact integers; the sign pattern of the
// running coordinates recovers the sequence on decode. Coordinates grow as
// 2^n, so callers bound chunk length (package chunk) and the arithmetic
// uses math/big.
package icgr
