package textformat

import (
	"bufio"
	"io"
	"strings"

	"github.com/bytedance/sonic"
)

// JSONLParser reads one JSON object per line. The `text` key is required;
// `labels` may hold flat strings (document labels) or [start, end, type]
// triples (span labels); every other key is kept as meta.
type JSONLParser struct{}

func (p *JSONLParser) Parse(r io.Reader, batchSize int, fn func(batch []Record) error) error {
	b := newBatcher(batchSize, fn)
	sc := bufio.NewScanner(decodeText(r))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}

		var obj map[string]interface{}
		if err := sonic.UnmarshalString(raw, &obj); err != nil {
			return parseErrorf(line, "invalid json: %v", err)
		}

		text, ok := obj["text"].(string)
		if !ok {
			return parseErrorf(line, "missing text field")
		}
		rec := Record{Text: text, Meta: map[string]interface{}{}}

		if rawLabels, ok := obj["labels"]; ok {
			list, ok := rawLabels.([]interface{})
			if !ok {
				return parseErrorf(line, "labels must be an array")
			}
			for _, item := range list {
				switch v := item.(type) {
				case string:
					rec.Labels = append(rec.Labels, v)
				case []interface{}:
					span, err := spanFromTriple(v, line)
					if err != nil {
						return err
					}
					rec.Spans = append(rec.Spans, span)
				default:
					return parseErrorf(line, "unsupported label shape %T", item)
				}
			}
		}

		for k, v := range obj {
			if k == "text" || k == "labels" {
				continue
			}
			rec.Meta[k] = v
		}

		if err := b.add(rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return b.flush()
}

func spanFromTriple(v []interface{}, line int) (Span, error) {
	if len(v) != 3 {
		return Span{}, parseErrorf(line, "span label must be [start, end, type]")
	}
	start, ok1 := v[0].(float64)
	end, ok2 := v[1].(float64)
	typ, ok3 := v[2].(string)
	if !ok1 || !ok2 || !ok3 {
		return Span{}, parseErrorf(line, "span label must be [start, end, type]")
	}
	return Span{Start: int(start), End: int(end), Type: typ}, nil
}
