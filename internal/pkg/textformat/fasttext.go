package textformat

import (
	"bufio"
	"io"
	"strings"
)

const fastTextLabelPrefix = "__label__"

// FastTextParser reads label-prefixed plain text: tokens starting with
// `__label__` are labels, the remaining tokens form the document text.
type FastTextParser struct{}

func (p *FastTextParser) Parse(r io.Reader, batchSize int, fn func(batch []Record) error) error {
	b := newBatcher(batchSize, fn)
	sc := bufio.NewScanner(decodeText(r))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimRight(sc.Text(), " \t\r\n")
		if raw == "" {
			continue
		}

		var labels, tokens []string
		for _, token := range strings.Split(raw, " ") {
			if strings.HasPrefix(token, fastTextLabelPrefix) {
				name := token[len(fastTextLabelPrefix):]
				if name == "" {
					return parseErrorf(line, "label tag without a name")
				}
				labels = append(labels, name)
			} else {
				tokens = append(tokens, token)
			}
		}

		text := strings.TrimSpace(strings.Join(tokens, " "))
		if text == "" {
			return parseErrorf(line, "no text after labels")
		}

		if err := b.add(Record{Text: text, Labels: labels}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return b.flush()
}
