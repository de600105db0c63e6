// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// StreamCtx parses FASTA from r and emits one Record per sequence.
// Sequence bytes are uppercased; header descriptions are preserved.
//
// It is cancelable: returning promptly when ctx is Done, even mid-record.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id, desc string
		seq      = make([]byte, 0, 1<<20)
		started  bool
	)

	flush := func() error {
		if !started {
			return nil
		}
		return emit(Record{ID: id, Desc: desc, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if started {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id, desc = parseHeader(line[1:])
			started = true
			continue
		}
		seq = append(seq, bytes.ToUpper(bytes.TrimSpace(line))...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamFromReader is the convenience wrapper with a background context.
func StreamFromReader(r io.Reader, emit func(Record) error) error {
	return StreamCtx(context.Background(), r, emit)
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
