// core/record/open.go
package record

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressed stream magic numbers, checked alongside path suffixes so that
// renamed files still open correctly.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// multiWriteCloser closes the compressor before the underlying file.
type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Open returns a reader for a BICGR stream. "-" means stdin. gzip, zstd
// and lz4 payloads are detected by magic number or suffix and decompressed
// transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [4]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}

	switch {
	case hasMagic(sig[:n], zstdMagic) || strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		zr := dec.IOReadCloser()
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr, fh}}, nil
	case hasMagic(sig[:n], lz4Magic) || strings.HasSuffix(path, ".lz4"):
		return &multiReadCloser{Reader: lz4.NewReader(fh), closers: []io.Closer{fh}}, nil
	case hasMagic(sig[:n], gzipMagic) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// Create opens path for writing, compressing by suffix (.gz, .zst, .lz4).
// "" or "-" means stdout, which is never closed. Unless force is set an
// existing path is refused.
func Create(path string, force bool) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiWriteCloser{Writer: zw, closers: []io.Closer{zw, fh}}, nil
	case strings.HasSuffix(path, ".lz4"):
		lw := lz4.NewWriter(fh)
		return &multiWriteCloser{Writer: lw, closers: []io.Closer{lw, fh}}, nil
	case strings.HasSuffix(path, ".gz"):
		gw := gzip.NewWriter(fh)
		return &multiWriteCloser{Writer: gw, closers: []io.Closer{gw, fh}}, nil
	}
	return fh, nil
}

func hasMagic(sig, magic []byte) bool {
	return len(sig) >= len(magic) && bytes.Equal(sig[:len(magic)], magic)
}
