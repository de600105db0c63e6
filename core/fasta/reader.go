// core/fasta/reader.go
package fasta

import (
	"context"
)

// Record represents a parsed FASTA sequence. ID is everything in the
// header up to the first whitespace; Desc is everything after it.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// StreamCtxPath is the ctx-aware channel wrapper around StreamPathCtx.
// Semantics:
//   - gzip and "-" for stdin are handled the same way (early open error
//     for non-stdin paths)
//   - channel-based API; scan-time errors are not propagated
func StreamCtxPath(ctx context.Context, path string) (<-chan Record, error) {
	// Preserve immediate error reporting for non-stdin paths.
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	go func() {
		defer close(out)
		_ = StreamPathCtx(ctx, path, func(r Record) error {
			out <- r
			return nil
		})
	}()
	return out, nil
}

// Stream is the legacy helper that uses a background context.
func Stream(path string) (<-chan Record, error) {
	return StreamCtxPath(context.Background(), path)
}
