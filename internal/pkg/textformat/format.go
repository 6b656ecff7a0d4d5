// Package textformat reads and writes the dataset file formats accepted by
// the upload and download pipelines: plain text, CSV, Excel, JSONL, CoNLL
// and FastText.
package textformat

import (
	"errors"
	"fmt"
	"io"
)

// Upload format names.
const (
	FormatPlain    = "plain"
	FormatCSV      = "csv"
	FormatExcel    = "excel"
	FormatJSON     = "json"
	FormatCoNLL    = "conll"
	FormatFastText = "txt"
)

// ErrUnknownFormat is returned by SelectParser for unsupported format names.
var ErrUnknownFormat = errors.New("textformat: unknown format")

// Span is a character-offset label on a document.
type Span struct {
	Start int    `json:"start_offset"`
	End   int    `json:"end_offset"`
	Type  string `json:"label"`
}

// Record is one parsed document with its format-dependent labels.
type Record struct {
	Text   string
	Labels []string
	Spans  []Span
	Meta   map[string]interface{}
}

// Parser reads a dataset file incrementally, invoking fn once per batch of at
// most batchSize records. A non-nil error from fn aborts the parse.
type Parser interface {
	Parse(r io.Reader, batchSize int, fn func(batch []Record) error) error
}

// SelectParser maps an upload format name to its parser.
func SelectParser(format string) (Parser, error) {
	switch format {
	case FormatPlain:
		return &PlainTextParser{}, nil
	case FormatCSV:
		return &CSVParser{}, nil
	case FormatExcel:
		return &ExcelParser{}, nil
	case FormatJSON:
		return &JSONLParser{}, nil
	case FormatCoNLL:
		return &CoNLLParser{}, nil
	case FormatFastText:
		return &FastTextParser{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ParseError reports a malformed record. The whole upload fails on the first
// one; there is no partial import.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

func parseErrorf(line int, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// IsParseError reports whether err wraps a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// batcher accumulates records and flushes them to fn in batchSize chunks.
type batcher struct {
	size  int
	fn    func(batch []Record) error
	batch []Record
}

func newBatcher(size int, fn func(batch []Record) error) *batcher {
	if size <= 0 {
		size = 1
	}
	return &batcher{size: size, fn: fn}
}

func (b *batcher) add(rec Record) error {
	b.batch = append(b.batch, rec)
	if len(b.batch) >= b.size {
		return b.flush()
	}
	return nil
}

func (b *batcher) flush() error {
	if len(b.batch) == 0 {
		return nil
	}
	batch := b.batch
	b.batch = nil
	return b.fn(batch)
}
