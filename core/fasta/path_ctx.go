// core/fasta/path_ctx.go
package fasta

import "context"

// StreamPathCtx opens path ("-" for stdin, gzip transparent) and streams
// its records through emit. Cancellation via ctx is honored promptly.
// emit may return a non-nil error (e.g. ctx.Err()) to stop early.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}
