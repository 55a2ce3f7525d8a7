package litegrep

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Line buffer sizing for the per-file scanner.
const (
	lineBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// Stats tracks what a run touched. The counters never appear on the normal
// output streams; they feed tests and debug logging.
type Stats struct {
	FilesScanned int64
	FilesFailed  int64
	LinesRead    int64
	LinesEmitted int64
}

// Scanner reads files line by line and emits the lines selected by the run
// configuration. Files are processed strictly one at a time; a file that
// cannot be read is reported on the error stream and skipped.
type Scanner struct {
	cfg    Config
	out    io.Writer
	errOut io.Writer
	stats  Stats

	// effectivePattern is the pattern after optional case folding, computed
	// once per run.
	effectivePattern string
}

// NewScanner creates a scanner that writes emitted lines to out and
// per-file failures to errOut.
func NewScanner(cfg Config, out, errOut io.Writer) *Scanner {
	pattern := cfg.Pattern
	if cfg.CaseInsensitive {
		pattern = strings.ToLower(pattern)
	}
	return &Scanner{
		cfg:              cfg,
		out:              out,
		errOut:           errOut,
		effectivePattern: pattern,
	}
}

// Run scans every file in order and returns the accumulated stats. Read
// failures never abort the run; each is reported on the error stream and
// the scanner moves on to the next file.
func (s *Scanner) Run(files []string) Stats {
	for _, path := range files {
		if err := s.scanFile(path); err != nil {
			s.stats.FilesFailed++
			fmt.Fprintf(s.errOut, "Failed to read %s: %v\n", path, err)
			logger.Debug().Str("file", path).Err(err).Msg("read failed")
			continue
		}
		s.stats.FilesScanned++
	}
	logger.Debug().
		Int64("scanned", s.stats.FilesScanned).
		Int64("failed", s.stats.FilesFailed).
		Int64("emitted", s.stats.LinesEmitted).
		Msg("run complete")
	return s.stats
}

// Stats returns the counters accumulated so far.
func (s *Scanner) Stats() Stats {
	return s.stats
}

func (s *Scanner) scanFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(newLineReader(f))
	sc.Buffer(make([]byte, lineBufferSize), maxLineSize)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		s.stats.LinesRead++

		line := sc.Text()
		if !utf8.ValidString(line) {
			return fmt.Errorf("invalid UTF-8 on line %d", lineNum)
		}

		isMatch := s.matches(line)
		if isMatch == s.cfg.InvertMatch {
			continue
		}
		s.stats.LinesEmitted++

		var b strings.Builder
		if s.cfg.ShowFilenames {
			fmt.Fprintf(&b, "%s: ", path)
		}
		if s.cfg.ShowLineNumbers {
			fmt.Fprintf(&b, "%d: ", lineNum)
		}
		if s.cfg.ColorOutput && isMatch && !s.cfg.InvertMatch {
			b.WriteString(Highlight(line, s.effectivePattern, s.cfg.CaseInsensitive))
		} else {
			b.WriteString(line)
		}
		fmt.Fprintln(s.out, b.String())
	}
	return sc.Err()
}

// matches reports whether line contains the effective pattern. An empty
// pattern matches every line.
func (s *Scanner) matches(line string) bool {
	if s.cfg.CaseInsensitive {
		line = strings.ToLower(line)
	}
	return strings.Contains(line, s.effectivePattern)
}
