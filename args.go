package litegrep

import "strings"

// Usage is the help text printed whenever help is requested, no pattern or
// targets were supplied, or argument parsing fails.
const Usage = `Usage: grep [OPTIONS] <pattern> <files...>

Options:
-i                Case-insensitive search
-n                Print line numbers
-v                Invert match (exclude lines that match the pattern)
-r                Recursive directory search
-f                Print filenames
-c                Enable colored output
-h, --help        Show help information
`

// Config holds the configuration for a single run. It is built once by
// ParseArgs and never modified afterwards.
type Config struct {
	CaseInsensitive bool
	ShowLineNumbers bool
	InvertMatch     bool
	Recursive       bool
	ShowFilenames   bool
	ColorOutput     bool
	HelpRequested   bool

	// Pattern is the literal substring to search for. An empty pattern
	// matches every line.
	Pattern string

	// Targets are the file or directory paths to search, in the order they
	// were supplied.
	Targets []string
}

// ParseArgs interprets the command-line tokens (program name excluded) and
// returns the run configuration.
//
// A token equal to -h or --help requests help. Any other token starting
// with a dash and at least one character long after it is a cluster of
// single-character flags, each interpreted independently; unrecognized
// characters are ignored. Everything else is a positional operand: the
// first becomes the pattern, the rest become the targets.
//
// The current grammar never fails; the error return exists so a future
// token class can reject input without changing the signature.
func ParseArgs(args []string) (Config, error) {
	var cfg Config
	var operands []string

	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			cfg.HelpRequested = true
			continue
		}
		if strings.HasPrefix(arg, "-") && len(arg) >= 2 {
			for _, ch := range arg[1:] {
				switch ch {
				case 'i':
					cfg.CaseInsensitive = true
				case 'n':
					cfg.ShowLineNumbers = true
				case 'v':
					cfg.InvertMatch = true
				case 'r':
					cfg.Recursive = true
				case 'f':
					cfg.ShowFilenames = true
				case 'c':
					cfg.ColorOutput = true
				case 'h':
					cfg.HelpRequested = true
				case '-':
					// Tolerated so a stray second dash never poisons a
					// cluster.
				default:
					// Unknown flag characters are deliberately ignored.
				}
			}
			continue
		}
		operands = append(operands, arg)
	}

	if len(operands) > 0 {
		cfg.Pattern = operands[0]
		cfg.Targets = operands[1:]
	}

	return cfg, nil
}
