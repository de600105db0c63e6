// internal/runutil/runutil.go
package runutil

import "fmt"

// MaxBlockWidth caps --block-width. math/big removes the overflow limit
// the original 128-bit arithmetic had, but decode allocates O(width)
// big.Ints per chunk, so the flag is still bounded.
const MaxBlockWidth = 512

// DefaultBlockWidth matches the widest chunk a 128-bit implementation
// could encode, which keeps records interchangeable with one.
const DefaultBlockWidth = 100

// DefaultOverlap is the stock seam width between adjacent chunks.
const DefaultOverlap = 10

// ValidateBlocking checks the block width / overlap pair for the encoder.
// It returns warnings for legal-but-odd combinations and an error for
// violations the codec would reject.
func ValidateBlocking(blockWidth, overlap int) ([]string, error) {
	if blockWidth < 2 || blockWidth > MaxBlockWidth {
		return nil, fmt.Errorf("--block-width must be in [2, %d], got %d", MaxBlockWidth, blockWidth)
	}
	if overlap < 1 || overlap >= blockWidth {
		return nil, fmt.Errorf("--ovl must be in [1, block-width), got %d", overlap)
	}
	var warns []string
	if overlap > blockWidth/2 {
		warns = append(warns, fmt.Sprintf("warning: overlap %d exceeds half the block width; records store mostly duplicate symbols", overlap))
	}
	return warns, nil
}
