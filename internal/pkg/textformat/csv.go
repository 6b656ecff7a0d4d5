package textformat

import (
	"encoding/csv"
	"errors"
	"io"
)

// CSVParser reads comma-separated datasets. The first row is the header; data
// rows either match the header width (columns mapped by name, `text` and
// `label` recognized, the rest kept as meta) or carry a single text column.
// Any other width is a parse error.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, batchSize int, fn func(batch []Record) error) error {
	reader := csv.NewReader(decodeText(r))
	reader.FieldsPerRecord = -1

	b := newBatcher(batchSize, fn)
	var header []string
	line := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return parseErrorf(line+1, "malformed csv: %v", err)
		}
		line++
		if line == 1 {
			header = row
			continue
		}
		rec, err := rowToRecord(header, row, line)
		if err != nil {
			return err
		}
		if err := b.add(rec); err != nil {
			return err
		}
	}
	return b.flush()
}

// rowToRecord applies the shared CSV/Excel row semantics.
func rowToRecord(header, row []string, line int) (Record, error) {
	switch {
	case len(row) == len(header) && len(row) >= 2:
		meta := map[string]interface{}{}
		var text, label string
		for i, col := range header {
			switch col {
			case "text":
				text = row[i]
			case "label":
				label = row[i]
			default:
				meta[col] = row[i]
			}
		}
		rec := Record{Text: text, Meta: meta}
		if label != "" {
			rec.Labels = []string{label}
		}
		return rec, nil
	case len(row) == 1:
		return Record{Text: row[0]}, nil
	default:
		return Record{}, parseErrorf(line, "expected %d columns, got %d", len(header), len(row))
	}
}
