package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NopCloser wraps a writer the caller owns (stdout) so it can stand in
// for a created output file.
func NopCloser(w io.Writer) io.WriteCloser { return nopCloser{w} }
