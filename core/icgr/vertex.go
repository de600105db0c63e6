// core/icgr/vertex.go
package icgr

// Vertex is the corner of the unit square assigned to a nucleotide.
// The zero Vertex is the "undetermined" corner: it maps back to 'N' and is
// never produced by a well-formed encode.
type Vertex struct {
	X, Y int
}

// Unknown is the sentinel symbol for an undetermined sign pair.
const Unknown byte = 'N'

// The four canonical corners. One quadrant per base; the sign pair alone
// identifies the base.
var vertices = map[byte]Vertex{
	'A': {1, 1},
	'T': {-1, 1},
	'C': {-1, -1},
	'G': {1, -1},
}

// VertexOf returns the corner for a nucleotide (case-insensitive) and
// whether the symbol is one of the four canonical bases.
func VertexOf(nt byte) (Vertex, bool) {
	if nt >= 'a' && nt <= 'z' {
		nt -= 'a' - 'A'
	}
	v, ok := vertices[nt]
	return v, ok
}

// NucleotideOf inverts VertexOf from the sign pattern of a running
// coordinate pair. Sign (0,0) yields Unknown.
func NucleotideOf(sx, sy int) byte {
	switch {
	case sx > 0 && sy > 0:
		return 'A'
	case sx < 0 && sy > 0:
		return 'T'
	case sx < 0 && sy < 0:
		return 'C'
	case sx > 0 && sy < 0:
		return 'G'
	default:
		return Unknown
	}
}

// VertexOfSigns returns the vertex contributed at a step, recovered from
// the sign pattern of the running coordinates at that step.
func VertexOfSigns(sx, sy int) Vertex {
	return vertices[NucleotideOf(sx, sy)]
}
