// internal/encodeapp/app.go
package encodeapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"icgr-core/record"
	"icgr/internal/cli"
	"icgr/internal/pipeline"
	"icgr/internal/runutil"
	"icgr/internal/version"
	"icgr/internal/writers"
)

// RunContext parses argv, encodes every input sequence, and writes one
// BICGR record per sequence. Exit codes: 0 ok, 1 one or more records
// failed, 2 usage/config error, 3 output error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("icgr-encode")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "icgr-encode version %s\n", version.Version)
		return 0
	}

	warns, err := runutil.ValidateBlocking(opts.BlockWidth, opts.Overlap)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if !opts.Quiet {
		for _, w := range warns {
			_, _ = fmt.Fprintln(stderr, w)
		}
	}

	out := writers.NopCloser(stdout)
	if opts.Output != "" && opts.Output != "-" {
		out, err = record.Create(opts.Output, opts.Force)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	header := opts.Header && opts.Format == cli.FormatText
	inCh, errCh := writers.StartRecordWriter(out, opts.Format, header, 64)

	cfg := pipeline.Config{
		Threads:    opts.Threads,
		BlockWidth: opts.BlockWidth,
		Overlap:    opts.Overlap,
		Strict:     opts.Strict,
	}

	failed := 0
	perr := pipeline.EncodeAll(ctx, cfg, opts.SeqFiles,
		func(rec record.Record) error {
			select {
			case inCh <- rec:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
		func(id string, err error) {
			failed++
			_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", id, err)
		},
	)

	close(inCh)
	werr := <-errCh
	if cerr := out.Close(); werr == nil && cerr != nil && !writers.IsBrokenPipe(cerr) {
		werr = cerr
	}

	if perr != nil {
		_, _ = fmt.Fprintln(stderr, perr)
		return 1
	}
	if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// Run uses a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
