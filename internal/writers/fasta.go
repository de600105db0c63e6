// internal/writers/fasta.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"icgr/internal/pipeline"
)

// StartFASTAWriter spins up a writer goroutine for decoded sequences.
// lineWidth wraps sequence lines; 0 writes each sequence on one line.
func StartFASTAWriter(out io.Writer, lineWidth, bufSize int) (chan<- pipeline.Decoded, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Decoded, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		var err error
		for d := range in {
			if err != nil {
				continue
			}
			err = writeFASTA(bw, d, lineWidth)
		}
		if err == nil {
			err = bw.Flush()
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}

func writeFASTA(w io.Writer, d pipeline.Decoded, lineWidth int) error {
	if d.Desc != "" {
		if _, err := fmt.Fprintf(w, ">%s %s\n", d.ID, d.Desc); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, ">%s\n", d.ID); err != nil {
			return err
		}
	}
	seq := d.Seq
	if lineWidth <= 0 {
		lineWidth = len(seq)
	}
	for off := 0; off < len(seq); off += lineWidth {
		end := off + lineWidth
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := w.Write(seq[off:end]); err != nil {
			return err
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	if len(seq) == 0 {
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
