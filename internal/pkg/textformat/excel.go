package textformat

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelParser reads the first sheet of an xlsx workbook with the same row
// semantics as CSVParser.
type ExcelParser struct{}

func (p *ExcelParser) Parse(r io.Reader, batchSize int, fn func(batch []Record) error) error {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return parseErrorf(0, "cannot open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return parseErrorf(0, "workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return parseErrorf(0, "cannot read sheet %q: %v", sheets[0], err)
	}

	b := newBatcher(batchSize, fn)
	var header []string
	for i, row := range rows {
		if i == 0 {
			header = row
			continue
		}
		if len(row) == 0 {
			continue
		}
		// GetRows drops trailing empty cells; restore the header width.
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		rec, err := rowToRecord(header, row, i+1)
		if err != nil {
			return err
		}
		if err := b.add(rec); err != nil {
			return err
		}
	}
	return b.flush()
}
