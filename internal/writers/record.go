// internal/writers/record.go
package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"icgr-core/record"
	"icgr/pkg/api"
)

// Record output formats.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// StartRecordWriter spins up a writer goroutine for encoded records.
// "text" emits BICGR lines (with the comment header unless disabled);
// "jsonl" emits one RecordV1 JSON document per line.
func StartRecordWriter(out io.Writer, format string, header bool, bufSize int) (chan<- record.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan record.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		var err error

		switch format {
		case FormatText:
			if header {
				_, err = fmt.Fprintln(bw, record.Header)
			}
			for rec := range in {
				if err != nil {
					continue
				}
				err = rec.Write(bw)
			}

		case FormatJSONL:
			enc := json.NewEncoder(bw)
			for rec := range in {
				if err != nil {
					continue
				}
				err = enc.Encode(ToAPIRecord(rec))
			}

		default:
			for range in {
			}
			errCh <- fmt.Errorf("unsupported output format %q", format)
			return
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

// ToAPIRecord converts a domain record to its stable v1 wire form.
func ToAPIRecord(rec record.Record) api.RecordV1 {
	out := api.RecordV1{
		ID:          rec.ID,
		Description: rec.Description,
		Overlap:     rec.Overlap,
		TriIntegers: make([]api.TriIntegerV1, len(rec.Triples)),
	}
	for i, t := range rec.Triples {
		out.TriIntegers[i] = api.TriIntegerV1{X: t.X.String(), Y: t.Y.String(), N: t.N}
	}
	return out
}
