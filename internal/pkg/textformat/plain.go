package textformat

import (
	"bufio"
	"io"
	"strings"
)

// PlainTextParser turns every non-blank line into one document.
type PlainTextParser struct{}

func (p *PlainTextParser) Parse(r io.Reader, batchSize int, fn func(batch []Record) error) error {
	b := newBatcher(batchSize, fn)
	sc := bufio.NewScanner(decodeText(r))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := b.add(Record{Text: text}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return b.flush()
}
