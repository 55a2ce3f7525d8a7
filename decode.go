package litegrep

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newLineReader wraps r so its content can be scanned as UTF-8 text.
// UTF-16 files are transcoded according to their byte order mark and a
// UTF-8 BOM is stripped. BOM-less input passes through raw (transform.Nop
// rather than a UTF-8 decoder, which would silently substitute U+FFFD), so
// invalid UTF-8 still reaches the scanner and is rejected per line.
func newLineReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}
