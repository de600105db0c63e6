// internal/decodeapp/app.go
package decodeapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"icgr-core/record"
	"icgr/internal/decodecli"
	"icgr/internal/pipeline"
	"icgr/internal/version"
	"icgr/internal/writers"
)

// RunContext parses argv, decodes every BICGR record, and writes the
// reconstructed sequences as FASTA. Exit codes: 0 ok, 1 one or more
// records failed, 2 usage/config error, 3 output error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := decodecli.NewFlagSet("icgr-decode")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := decodecli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(stdout, "icgr-decode version %s\n", version.Version)
		return 0
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

	inCh, errCh := writers.StartFASTAWriter(out, opts.LineWidth, 64)

	cfg := pipeline.Config{Threads: opts.Threads}

	failed := 0
	perr := pipeline.DecodeAll(ctx, cfg, opts.Input,
		func(d pipeline.Decoded) error {
			select {
			case inCh <- d:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
		func(id string, err error) {
			failed++
			if id == "" {
				_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
				return
			}
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
