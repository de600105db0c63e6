// internal/decodecli/options.go
package decodecli

import (
	"errors"
	"flag"
	"fmt"

	"icgr/internal/version"
)

// Options holds all icgr-decode flags and arguments.
type Options struct {
	Input     string // BICGR path; "-" = stdin
	Output    string // FASTA path; "" or "-" = stdout
	LineWidth int    // FASTA wrap width; 0 = one line per sequence
	Threads   int
	Force     bool
	Quiet     bool
	Version   bool
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
		fmt.Fprintf(out, "%s – decode integer chaos game records back to FASTA\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [options] <BICGR>\n", name)
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input file            BICGR file or '-' for STDIN; .gz/.zst/.lz4 accepted")
		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output file           FASTA output path; '-' = STDOUT")
		fmt.Fprintf(out, "      --line-width int        FASTA line wrap (0=single line) [%s]\n", def("line-width"))
		fmt.Fprintf(out, "      --force                 Overwrite an existing output file [%s]\n", def("force"))
		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// A single positional argument is accepted as the input path.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "i", "", "BICGR input path (shorthand)")
	fs.StringVar(&opt.Input, "input", "", "BICGR input path ('-' = stdin)")

	fs.IntVar(&opt.Threads, "t", 0, "worker threads (shorthand)")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs)")

	fs.StringVar(&opt.Output, "o", "", "FASTA output path (shorthand)")
	fs.StringVar(&opt.Output, "output", "", "FASTA output path ('-' = stdout)")
	fs.IntVar(&opt.LineWidth, "line-width", 70, "FASTA line wrap (0 = single line)")
	fs.BoolVar(&opt.Force, "force", false, "overwrite an existing output file")

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

	// Positional input
	switch args := fs.Args(); {
	case opt.Input != "" && len(args) > 0:
		return opt, errors.New("--input conflicts with a positional input path")
	case opt.Input == "" && len(args) == 1:
		opt.Input = args[0]
	case opt.Input == "" && len(args) == 0:
		return opt, errors.New("provide a BICGR file (or '-' for stdin)")
	case len(args) > 1:
		return opt, errors.New("expected exactly one input path")
	}

	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.LineWidth < 0 {
		return opt, errors.New("--line-width must be ≥ 0")
	}
	return opt, nil
}
