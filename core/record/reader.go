// core/record/reader.go
package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"icgr-core/icgr"
)

// Parse error kinds, matchable with errors.Is through *ParseError.
var (
	ErrMissingID       = errors.New("missing sequence id")
	ErrInvalidOverlap  = errors.New("invalid overlap")
	ErrMalformedTriple = errors.New("malformed triple")
)

// ParseError is a recoverable per-line failure. The reader stays usable
// after returning one, so a malformed record does not abort a batch.
type ParseError struct {
	Name string // input name (path or "-")
	Line int    // 1-based line number
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s:%d: %v", e.Name, e.Line, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// Reader parses BICGR records line by line.
type Reader struct {
	sc   *bufio.Scanner
	name string
	line int
}

// NewReader wraps r. name appears in error messages.
func NewReader(r io.Reader, name string) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // one line per sequence; lines get long
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc, name: name}
}

// Read returns the next record. It returns io.EOF at end of input and
// *ParseError for a malformed line; after a *ParseError the next call
// continues with the following line.
func (r *Reader) Read() (Record, error) {
	for r.sc.Scan() {
		r.line++
		line := strings.TrimSpace(r.sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return Record{}, &ParseError{Name: r.name, Line: r.line, Err: err}
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("%s: scan: %w", r.name, err)
	}
	return Record{}, io.EOF
}

// ReadAll collects every well-formed record from r, stopping at the first
// error of any kind.
func ReadAll(r io.Reader, name string) ([]Record, error) {
	rd := NewReader(r, name)
	var out []Record
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

func parseLine(line string) (Record, error) {
	f := strings.Split(line, "\t")
	if len(f) != 4 {
		return Record{}, fmt.Errorf("want 4 tab-separated fields, got %d", len(f))
	}

	id := strings.TrimSpace(f[0])
	if id == "" {
		return Record{}, ErrMissingID
	}

	overlap, err := strconv.Atoi(strings.TrimSpace(f[2]))
	if err != nil || overlap < 1 {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidOverlap, f[2])
	}

	triples, err := parseTriples(strings.TrimSpace(f[3]))
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:          id,
		Description: strings.TrimSpace(f[1]),
		Overlap:     overlap,
		Triples:     triples,
	}, nil
}

// parseTriples parses "x,y,n" triples joined by ';'. An empty field is a
// zero-triple record, which decodes to an empty sequence.
func parseTriples(s string) (icgr.TriIntegerList, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	list := make(icgr.TriIntegerList, 0, len(parts))
	for _, p := range parts {
		fields := strings.Split(p, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedTriple, p)
		}
		x, ok := new(big.Int).SetString(strings.TrimSpace(fields[0]), 10)
		if !ok {
			return nil, fmt.Errorf("%w: bad x in %q", ErrMalformedTriple, p)
		}
		y, ok := new(big.Int).SetString(strings.TrimSpace(fields[1]), 10)
		if !ok {
			return nil, fmt.Errorf("%w: bad y in %q", ErrMalformedTriple, p)
		}
		n, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: bad length in %q", ErrMalformedTriple, p)
		}
		list = append(list, icgr.TriInteger{X: x, Y: y, N: n})
	}
	return list, nil
}
