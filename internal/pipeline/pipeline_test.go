// internal/pipeline/pipeline_test.go
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"icgr-core/chunk"
	"icgr-core/record"
)

func randomSeq(rng *rand.Rand, n int) []byte {
	bases := []byte("ATCG")
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = bases[rng.Intn(4)]
	}
	return seq
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ctx := context.Background()
	configs := []Config{
		{Threads: 1, BlockWidth: 100, Overlap: 10, Strict: true},
		{Threads: 4, BlockWidth: 10, Overlap: 3, Strict: true},
	}
	rng := rand.New(rand.NewSource(11))
	for _, cfg := range configs {
		for trial := 0; trial < 40; trial++ {
			seq := randomSeq(rng, 1+rng.Intn(500))
			triples, err := EncodeSequence(ctx, cfg, seq)
			if err != nil {
				t.Fatalf("encode (w=%d o=%d): %v", cfg.BlockWidth, cfg.Overlap, err)
			}
			rec := record.Record{ID: "t", Overlap: cfg.Overlap, Triples: triples}
			got, err := DecodeRecord(ctx, cfg, rec)
			if err != nil {
				t.Fatalf("decode (w=%d o=%d): %v", cfg.BlockWidth, cfg.Overlap, err)
			}
			if !bytes.Equal(got, seq) {
				t.Fatalf("round trip mismatch for len %d at w=%d o=%d", len(seq), cfg.BlockWidth, cfg.Overlap)
			}
		}
	}
}

func TestEncodeSequenceDeterministicAcrossThreads(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(23))
	seq := randomSeq(rng, 1234)

	serial := Config{Threads: 1, BlockWidth: 100, Overlap: 10}
	parallel := Config{Threads: 8, BlockWidth: 100, Overlap: 10}

	a, err := EncodeSequence(ctx, serial, seq)
	if err != nil {
		t.Fatalf("serial encode: %v", err)
	}
	b, err := EncodeSequence(ctx, parallel, seq)
	if err != nil {
		t.Fatalf("parallel encode: %v", err)
	}
	if a.String() != b.String() {
		t.Fatalf("thread count changed the output:\n%s\n%s", a, b)
	}
}

func TestEncodeSequenceEmpty(t *testing.T) {
	triples, err := EncodeSequence(context.Background(), Config{BlockWidth: 100, Overlap: 10}, nil)
	if err != nil || triples != nil {
		t.Fatalf("empty sequence should yield nil triples: %v, %v", triples, err)
	}
}

func TestEncodeSequenceStrictFailure(t *testing.T) {
	cfg := Config{Threads: 2, BlockWidth: 10, Overlap: 3, Strict: true}
	_, err := EncodeSequence(context.Background(), cfg, []byte("ACGTACGTACGTNACGT"))
	if err == nil {
		t.Fatal("strict encode must reject N")
	}
}

func TestDecodeRecordDetectsCorruption(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Threads: 2, BlockWidth: 10, Overlap: 3, Strict: true}
	rng := rand.New(rand.NewSource(5))
	seq := randomSeq(rng, 60)

	triples, err := EncodeSequence(ctx, cfg, seq)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(triples) < 3 {
		t.Fatalf("expected several chunks, got %d", len(triples))
	}
	// Flip the middle triple's X so its chunk decodes to different symbols.
	triples[1].X = new(big.Int).Neg(triples[1].X)

	_, err = DecodeRecord(ctx, cfg, record.Record{ID: "t", Overlap: 3, Triples: triples})
	if err == nil {
		t.Fatal("corrupted triple must fail reassembly")
	}
	var om *chunk.OverlapMismatchError
	var lm *chunk.LengthMismatchError
	if !errors.As(err, &om) && !errors.As(err, &lm) {
		t.Fatalf("want an overlap or length mismatch, got %v", err)
	}
}

func TestDecodeRecordEmpty(t *testing.T) {
	seq, err := DecodeRecord(context.Background(), Config{Overlap: 10}, record.Record{ID: "e", Overlap: 10})
	if err != nil || seq != nil {
		t.Fatalf("zero-triple record should decode to nil: %v, %v", seq, err)
	}
}

func TestEncodeAllReportsBadSequenceAndContinues(t *testing.T) {
	fa := filepath.Join(t.TempDir(), "in.fa")
	data := ">good1\nACGTACGT\n>bad\nACGTNNACGT\n>good2\nTTTTCCCC\n"
	if err := os.WriteFile(fa, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := Config{Threads: 1, BlockWidth: 100, Overlap: 10, Strict: true}
	var ids, failed []string
	err := EncodeAll(context.Background(), cfg, []string{fa},
		func(rec record.Record) error {
			ids = append(ids, rec.ID)
			return nil
		},
		func(id string, err error) {
			failed = append(failed, id)
		})
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	if len(ids) != 2 || ids[0] != "good1" || ids[1] != "good2" {
		t.Fatalf("encoded ids = %v", ids)
	}
	if len(failed) != 1 || failed[0] != "bad" {
		t.Fatalf("failed ids = %v", failed)
	}
}

func TestDecodeAllSkipsMalformedLines(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Threads: 1, BlockWidth: 100, Overlap: 10, Strict: true}

	triples, err := EncodeSequence(ctx, cfg, []byte("ACGTACGTACGT"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	good := record.Record{ID: "ok", Overlap: 10, Triples: triples}

	path := filepath.Join(t.TempDir(), "mixed.bicgr")
	var buf bytes.Buffer
	if err := good.Write(&buf); err != nil {
		t.Fatalf("write record: %v", err)
	}
	buf.WriteString("this line is not a record\n")
	good2 := good
	good2.ID = "ok2"
	if err := good2.Write(&buf); err != nil {
		t.Fatalf("write record: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var ids []string
	var skipped int
	err = DecodeAll(ctx, cfg, path,
		func(d Decoded) error {
			ids = append(ids, d.ID)
			return nil
		},
		func(id string, err error) { skipped++ })
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if skipped != 1 || len(ids) != 2 || ids[0] != "ok" || ids[1] != "ok2" {
		t.Fatalf("recovery failed: skipped=%d ids=%v", skipped, ids)
	}
}

func TestForEachIndexFirstErrorWins(t *testing.T) {
	sentinel := errors.New("boom")
	err := forEachIndex(context.Background(), 4, 100, func(i int) error {
		if i == 17 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel error, got %v", err)
	}
}
