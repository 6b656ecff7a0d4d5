package textformat

import (
	"bufio"
	"io"
	"strings"
)

// CoNLLParser reads tab-separated token/tag lines. A blank line ends a
// sentence; sentence text is the tokens joined by single spaces, and BIO tag
// runs become character-offset spans.
type CoNLLParser struct{}

func (p *CoNLLParser) Parse(r io.Reader, batchSize int, fn func(batch []Record) error) error {
	b := newBatcher(batchSize, fn)
	sc := bufio.NewScanner(decodeText(r))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var words, tags []string
	line := 0
	flushSentence := func() error {
		if len(words) == 0 {
			return nil
		}
		rec := sentenceRecord(words, tags)
		words, tags = nil, nil
		return b.add(rec)
	}

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			if err := flushSentence(); err != nil {
				return err
			}
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 2 {
			return parseErrorf(line, "expected token<TAB>tag, got %q", text)
		}
		words = append(words, fields[0])
		tags = append(tags, fields[1])
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if err := flushSentence(); err != nil {
		return err
	}
	return b.flush()
}

// sentenceRecord joins tokens into the document text and converts BIO chunks
// into character spans. Repeated surface forms advance a search cursor so
// each occurrence maps to its own offsets.
func sentenceRecord(words, tags []string) Record {
	text := strings.Join(words, " ")
	rec := Record{Text: text}

	cursor := map[string]int{}
	for _, ch := range bioChunks(tags) {
		entity := strings.Join(words[ch.start:ch.end+1], " ")
		left := strings.Index(text[cursor[entity]:], entity)
		if left < 0 {
			continue
		}
		left += cursor[entity]
		right := left + len(entity)
		rec.Spans = append(rec.Spans, Span{Start: left, End: right, Type: ch.typ})
		cursor[entity] = right
	}
	return rec
}

type chunk struct {
	typ        string
	start, end int // token indices, inclusive
}

// bioChunks extracts labeled chunks from a BIO tag sequence.
func bioChunks(tags []string) []chunk {
	var chunks []chunk
	var cur *chunk
	for i, tag := range tags {
		op, typ := splitTag(tag)
		switch {
		case op == "B" || (op == "I" && (cur == nil || cur.typ != typ)):
			if cur != nil {
				chunks = append(chunks, *cur)
			}
			cur = &chunk{typ: typ, start: i, end: i}
		case op == "I":
			cur.end = i
		default: // O or anything unrecognized
			if cur != nil {
				chunks = append(chunks, *cur)
				cur = nil
			}
		}
	}
	if cur != nil {
		chunks = append(chunks, *cur)
	}
	return chunks
}

func splitTag(tag string) (op, typ string) {
	if tag == "O" {
		return "O", ""
	}
	op, typ, found := strings.Cut(tag, "-")
	if !found || (op != "B" && op != "I") {
		return "O", ""
	}
	return op, typ
}
