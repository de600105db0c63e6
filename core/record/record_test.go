// core/record/record_test.go
package record

import (
	"bytes"
	"errors"
	"io"
	"math/big"
	"strings"
	"testing"

	"icgr-core/icgr"
)

func tri(x, y int64, n int) icgr.TriInteger {
	return icgr.TriInteger{X: big.NewInt(x), Y: big.NewInt(y), N: n}
}

func TestWriteLine(t *testing.T) {
	rec := Record{
		ID:          "seq1",
		Description: "mydesc",
		Overlap:     8,
		Triples:     icgr.TriIntegerList{tri(1, 2, 3), tri(4, 5, 6)},
	}
	var buf bytes.Buffer
	if err := rec.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "seq1\tmydesc\t8\t1,2,3;4,5,6\n" {
		t.Fatalf("Write = %q", got)
	}
}

func TestWriteWithoutDescription(t *testing.T) {
	rec := Record{ID: "seqX", Overlap: 10, Triples: icgr.TriIntegerList{tri(7, 8, 9)}}
	var buf bytes.Buffer
	if err := rec.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "seqX\t\t10\t7,8,9\n" {
		t.Fatalf("Write = %q", got)
	}
}

func TestReadValidRecord(t *testing.T) {
	in := Header + "\nseq1\tdescription\t8\t1,2,3;4,5,6\n"
	recs, err := ReadAll(strings.NewReader(in), "test")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.ID != "seq1" || r.Description != "description" || r.Overlap != 8 {
		t.Fatalf("record fields wrong: %+v", r)
	}
	if r.Triples.String() != "1,2,3;4,5,6" {
		t.Fatalf("triples = %q", r.Triples)
	}
}

func TestReadRoundTrip(t *testing.T) {
	rec := Record{
		ID:          "chr1",
		Description: "Homo sapiens mitochondrion",
		Overlap:     10,
		Triples:     icgr.TriIntegerList{tri(659, 783, 10), tri(-5, -5, 1)},
	}
	var buf bytes.Buffer
	if err := rec.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	recs, err := ReadAll(&buf, "test")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != rec.ID || recs[0].Description != rec.Description ||
		recs[0].Overlap != rec.Overlap || recs[0].Triples.String() != rec.Triples.String() {
		t.Fatalf("round trip mismatch: %+v", recs)
	}
}

func TestReadMissingID(t *testing.T) {
	_, err := ReadAll(strings.NewReader("\tdesc\t8\t1,2,3\n"), "test")
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("want ErrMissingID, got %v", err)
	}
}

func TestReadInvalidOverlap(t *testing.T) {
	_, err := ReadAll(strings.NewReader("seq2\tdesc\t0\t1,2,3\n"), "test")
	if !errors.Is(err, ErrInvalidOverlap) {
		t.Fatalf("want ErrInvalidOverlap, got %v", err)
	}
	_, err = ReadAll(strings.NewReader("seq2\tdesc\tten\t1,2,3\n"), "test")
	if !errors.Is(err, ErrInvalidOverlap) {
		t.Fatalf("want ErrInvalidOverlap, got %v", err)
	}
}

func TestReadMalformedTriple(t *testing.T) {
	bad := []string{
		"seq3\td\t8\t1,2\n",
		"seq3\td\t8\t1,2,3;4,5\n",
		"seq3\td\t8\tx,2,3\n",
		"seq3\td\t8\t1,2,0\n",
	}
	for _, in := range bad {
		if _, err := ReadAll(strings.NewReader(in), "test"); !errors.Is(err, ErrMalformedTriple) {
			t.Errorf("input %q: want ErrMalformedTriple, got %v", in, err)
		}
	}
}

func TestReadBadFieldCount(t *testing.T) {
	_, err := ReadAll(strings.NewReader("seq3\tOnlyOneField\n"), "test")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *ParseError, got %v", err)
	}
	if pe.Line != 1 || pe.Name != "test" {
		t.Fatalf("parse error location wrong: %+v", pe)
	}
}

func TestReadZeroTriples(t *testing.T) {
	recs, err := ReadAll(strings.NewReader("empty\t\t5\t\n"), "test")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 1 || len(recs[0].Triples) != 0 {
		t.Fatalf("zero-triple record should be well-formed: %+v", recs)
	}
}

func TestReaderContinuesAfterParseError(t *testing.T) {
	in := "good1\t\t8\t1,2,3\n\tmissing\t8\t1,2,3\ngood2\t\t8\t4,5,6\n"
	rd := NewReader(strings.NewReader(in), "test")

	var ids []string
	var parseErrs int
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		var pe *ParseError
		if errors.As(err, &pe) {
			parseErrs++
			continue
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		ids = append(ids, rec.ID)
	}
	if parseErrs != 1 || len(ids) != 2 || ids[0] != "good1" || ids[1] != "good2" {
		t.Fatalf("recovery failed: errs=%d ids=%v", parseErrs, ids)
	}
}

func TestReadBigCoordinates(t *testing.T) {
	// 2^99-scale values exceed int64; the parser must keep full precision.
	x := new(big.Int).Lsh(big.NewInt(1), 99)
	in := "big\t\t10\t" + x.String() + ",-" + x.String() + ",100\n"
	recs, err := ReadAll(strings.NewReader(in), "test")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if recs[0].Triples[0].X.Cmp(x) != 0 {
		t.Fatalf("x = %s, want %s", recs[0].Triples[0].X, x)
	}
}
