// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"icgr-core/chunk"
	"icgr-core/fasta"
	"icgr-core/icgr"
	"icgr-core/record"
)

// Config controls both directions of the codec pipeline.
type Config struct {
	Threads    int  // worker goroutines (0 = all CPUs)
	BlockWidth int  // maximum chunk length
	Overlap    int  // symbols shared between adjacent chunks
	Strict     bool // reject non-ACGT symbols on encode
}

func (c Config) workers(jobs int) int {
	n := c.Threads
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > jobs {
		n = jobs
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Decoded is one reconstructed sequence ready for FASTA output.
type Decoded struct {
	ID   string
	Desc string
	Seq  []byte
}

// EncodeSequence chunks one sequence and encodes the chunks on a worker
// pool. Each job is tagged with its chunk index and writes only its own
// slot, so the resulting list is in chunk order for any worker count.
func EncodeSequence(ctx context.Context, cfg Config, seq []byte) (icgr.TriIntegerList, error) {
	if len(seq) == 0 {
		return nil, nil
	}
	chunks, err := chunk.Split(seq, cfg.BlockWidth, cfg.Overlap)
	if err != nil {
		return nil, err
	}
	triples := make(icgr.TriIntegerList, len(chunks))
	err = forEachIndex(ctx, cfg.workers(len(chunks)), len(chunks), func(i int) error {
		t, err := icgr.EncodeChunk(chunks[i], cfg.Strict)
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
		triples[i] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return triples, nil
}

// DecodeRecord decodes each triple on a worker pool, then merges the
// chunks sequentially and validates the reassembled length against the
// lengths stored in the record.
func DecodeRecord(ctx context.Context, cfg Config, rec record.Record) ([]byte, error) {
	if len(rec.Triples) == 0 {
		return nil, nil
	}
	chunks := make([][]byte, len(rec.Triples))
	err := forEachIndex(ctx, cfg.workers(len(rec.Triples)), len(rec.Triples), func(i int) error {
		seq, err := icgr.DecodeTriple(rec.Triples[i])
		if err != nil {
			return fmt.Errorf("triple %d: %w", i, err)
		}
		chunks[i] = seq
		return nil
	})
	if err != nil {
		return nil, err
	}
	merged, err := chunk.Merge(chunks, rec.Overlap)
	if err != nil {
		return nil, err
	}
	if want := rec.Triples.DecodedLength(rec.Overlap); len(merged) != want {
		return nil, &chunk.LengthMismatchError{Want: want, Got: len(merged)}
	}
	return merged, nil
}

// EncodeAll streams FASTA records from paths through EncodeSequence and
// visits one BICGR record per input sequence, in input order. Encode
// failures are reported through onErr with the sequence id and do not stop
// the stream; the first visit or input error does.
func EncodeAll(
	ctx context.Context,
	cfg Config,
	paths []string,
	visit func(record.Record) error,
	onErr func(id string, err error),
) error {
	for _, p := range paths {
		err := fasta.StreamPathCtx(ctx, p, func(fr fasta.Record) error {
			triples, err := EncodeSequence(ctx, cfg, fr.Seq)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				onErr(fr.ID, err)
				return nil
			}
			return visit(record.Record{
				ID:          fr.ID,
				Description: fr.Desc,
				Overlap:     cfg.Overlap,
				Triples:     triples,
			})
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// DecodeAll reads BICGR records from path and visits one Decoded sequence
// per record, in input order. Malformed lines and per-record decode
// failures are reported through onErr and skipped; scan and visit errors
// stop the stream.
func DecodeAll(
	ctx context.Context,
	cfg Config,
	path string,
	visit func(Decoded) error,
	onErr func(id string, err error),
) error {
	rc, err := record.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	rd := record.NewReader(rc, path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		var pe *record.ParseError
		if errors.As(err, &pe) {
			onErr("", err)
			continue
		}
		if err != nil {
			return err
		}
		seq, err := DecodeRecord(ctx, cfg, rec)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			onErr(rec.ID, err)
			continue
		}
		if err := visit(Decoded{ID: rec.ID, Desc: rec.Description, Seq: seq}); err != nil {
			return err
		}
	}
}

// forEachIndex fans indices [0, n) out to a worker pool and runs fn on
// each. The first fn error wins; remaining jobs are drained without work.
func forEachIndex(ctx context.Context, workers, n int, fn func(i int) error) error {
	jobs := make(chan int, workers*2)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ferr error
	)
	fail := func(err error) {
		mu.Lock()
		if ferr == nil {
			ferr = err
		}
		mu.Unlock()
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return ferr != nil
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					if failed() {
						continue
					}
					if err := fn(i); err != nil {
						fail(err)
					}
				}
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	return ferr
}
