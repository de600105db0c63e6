// internal/writers/fasta_test.go
package writers

import (
	"bytes"
	"testing"

	"icgr/internal/pipeline"
)

func collectFASTA(t *testing.T, lineWidth int, ds ...pipeline.Decoded) string {
	t.Helper()
	var buf bytes.Buffer
	in, errCh := StartFASTAWriter(&buf, lineWidth, 0)
	for _, d := range ds {
		in <- d
	}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	return buf.String()
}

func TestFASTAWrap(t *testing.T) {
	got := collectFASTA(t, 4, pipeline.Decoded{ID: "s1", Seq: []byte("ACGTACGTAC")})
	want := ">s1\nACGT\nACGT\nAC\n"
	if got != want {
		t.Fatalf("wrapped output = %q, want %q", got, want)
	}
}

func TestFASTASingleLine(t *testing.T) {
	got := collectFASTA(t, 0, pipeline.Decoded{ID: "s1", Desc: "some description", Seq: []byte("ACGTACGTAC")})
	want := ">s1 some description\nACGTACGTAC\n"
	if got != want {
		t.Fatalf("single-line output = %q, want %q", got, want)
	}
}

func TestFASTAEmptySequence(t *testing.T) {
	got := collectFASTA(t, 70, pipeline.Decoded{ID: "empty"})
	want := ">empty\n\n"
	if got != want {
		t.Fatalf("empty-sequence output = %q, want %q", got, want)
	}
}
