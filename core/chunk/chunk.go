// core/chunk/chunk.go
package chunk

import "fmt"

// Split divides seq into windows of at most width symbols taken at stride
// width-overlap, so every pair of adjacent windows shares exactly overlap
// symbols. A sequence no longer than width comes back as a single window.
// The final window may be shorter than width; it is emitted as-is.
//
// Windows alias seq; callers that mutate them must copy first.
func Split(seq []byte, width, overlap int) ([][]byte, error) {
	if width < 2 {
		return nil, fmt.Errorf("chunk: block width must be >= 2, got %d", width)
	}
	if overlap < 1 || overlap >= width {
		return nil, fmt.Errorf("chunk: overlap must be in [1, width), got overlap=%d width=%d", overlap, width)
	}
	if len(seq) <= width {
		return [][]byte{seq}, nil
	}

	step := width - overlap
	out := make([][]byte, 0, (len(seq)-overlap+step-1)/step)
	for off := 0; off < len(seq); off += step {
		end := off + width
		if end > len(seq) {
			end = len(seq)
		}
		out = append(out, seq[off:end])
		if end == len(seq) {
			break
		}
	}
	return out, nil
}
