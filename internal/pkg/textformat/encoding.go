package textformat

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText wraps r with a UTF-8 decoder. UTF-16 input is detected by BOM,
// or by NUL-byte position when the BOM is absent; a UTF-8 BOM is stripped.
func decodeText(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, _ := br.Peek(1024)

	switch {
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		return transform.NewReader(br, dec)
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		return transform.NewReader(br, dec)
	case bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}):
		dec := unicode.UTF8BOM.NewDecoder()
		return transform.NewReader(br, dec)
	}

	// ASCII text encoded as UTF-16 without a BOM shows up as alternating NUL
	// bytes; odd positions mean little endian.
	if i := bytes.IndexByte(head, 0x00); i >= 0 {
		endianness := unicode.BigEndian
		if i%2 == 1 {
			endianness = unicode.LittleEndian
		}
		dec := unicode.UTF16(endianness, unicode.IgnoreBOM).NewDecoder()
		return transform.NewReader(br, dec)
	}

	return br
}
