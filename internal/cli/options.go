// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"icgr/internal/runutil"
	"icgr/internal/version"
)

// Options holds all icgr-encode flags and arguments.
type Options struct {
	// Input
	SeqFiles []string

	// Codec parameters
	BlockWidth int
	Overlap    int
	Strict     bool

	// Performance
	Threads int

	// Output
	Output string // path; "" or "-" = stdout
	Format string // text | jsonl
	Force  bool
	Header bool // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}
		fmt.Fprintf(out, "%s – encode DNA sequences as integer chaos game records\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [options] <FASTA ...>\n", name)
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable) or '-' for STDIN; .gz accepted")
		fmt.Fprintln(out, "\nCodec:")
		fmt.Fprintf(out, "  -w, --block-width int       Maximum chunk length [%s]\n", def("block-width"))
		fmt.Fprintf(out, "      --ovl int               Symbols shared between adjacent chunks [%s]\n", def("ovl"))
		fmt.Fprintf(out, "      --strict                Reject non-ACGT symbols instead of zero-vertex encoding [%s]\n", def("strict"))
		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output file           Output path; '.gz'/'.zst'/'.lz4' compress; '-' = STDOUT [%s]\n", defOr(def("output"), "-"))
		fmt.Fprintf(out, "      --format string         Output format: text | jsonl [%s]\n", def("format"))
		fmt.Fprintf(out, "      --force                 Overwrite an existing output file [%s]\n", def("force"))
		fmt.Fprintf(out, "      --no-header             Suppress the comment header line (text) [%s]\n", def("no-header"))
		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

func defOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are treated as additional sequence files.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var seq stringSlice
	fs.Var(&seq, "s", "FASTA file(s) (shorthand)")
	fs.Var(&seq, "sequences", "FASTA file(s) (repeatable or '-')")

	fs.IntVar(&opt.BlockWidth, "w", runutil.DefaultBlockWidth, "maximum chunk length (shorthand)")
	fs.IntVar(&opt.BlockWidth, "block-width", runutil.DefaultBlockWidth, "maximum chunk length")
	fs.IntVar(&opt.Overlap, "ovl", runutil.DefaultOverlap, "overlap between adjacent chunks")
	fs.BoolVar(&opt.Strict, "strict", false, "reject non-ACGT symbols")

	fs.IntVar(&opt.Threads, "t", 0, "worker threads (shorthand)")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs)")

	fs.StringVar(&opt.Output, "o", "", "output path (shorthand)")
	fs.StringVar(&opt.Output, "output", "", "output path ('-' = stdout)")
	fs.StringVar(&opt.Format, "format", FormatText, "output format: text | jsonl")
	fs.BoolVar(&opt.Force, "force", false, "overwrite an existing output file")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress comment header line")

	fs.BoolVar(&opt.Quiet, "q", false, "suppress warnings (shorthand)")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = append([]string(seq), fs.Args()...)
	opt.Header = !noHeader

	// Validation
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("provide at least one FASTA file (or '-' for stdin)")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Format != FormatText && opt.Format != FormatJSONL {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	return opt, nil
}

// Output formats accepted by --format.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
