package service

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/bytedance/sonic"
	"github.com/samber/lo"
)

// renderCSV writes one row per annotation (a bare row when a document has
// none). Column layout depends on the project type.
func renderCSV(project *model.Project, docs []model.Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch project.ProjectType {
	case model.ProjectSequenceLabeling:
		if err := w.Write([]string{"id", "text", "label", "start_offset", "end_offset", "meta"}); err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if len(doc.SpanAnnotations) == 0 {
				if err := w.Write([]string{doc.ID.String(), doc.Text, "", "", "", string(doc.Meta)}); err != nil {
					return nil, err
				}
				continue
			}
			for _, a := range doc.SpanAnnotations {
				row := []string{
					doc.ID.String(), doc.Text, labelText(a.Label),
					strconv.Itoa(a.StartOffset), strconv.Itoa(a.EndOffset), string(doc.Meta),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	case model.ProjectSeq2seq:
		if err := w.Write([]string{"id", "text", "label", "meta"}); err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if len(doc.TextAnnotations) == 0 {
				if err := w.Write([]string{doc.ID.String(), doc.Text, "", string(doc.Meta)}); err != nil {
					return nil, err
				}
				continue
			}
			for _, a := range doc.TextAnnotations {
				if err := w.Write([]string{doc.ID.String(), doc.Text, a.Text, string(doc.Meta)}); err != nil {
					return nil, err
				}
			}
		}
	default: // DocumentClassification
		if err := w.Write([]string{"id", "text", "label", "meta"}); err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if len(doc.DocAnnotations) == 0 {
				if err := w.Write([]string{doc.ID.String(), doc.Text, "", string(doc.Meta)}); err != nil {
					return nil, err
				}
				continue
			}
			for _, a := range doc.DocAnnotations {
				if err := w.Write([]string{doc.ID.String(), doc.Text, labelText(a.Label), string(doc.Meta)}); err != nil {
					return nil, err
				}
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// exportedDoc is the JSON/JSONL shape of a document with its annotations.
type exportedDoc struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	Annotations interface{} `json:"annotations"`
	Meta        interface{} `json:"meta"`
}

func toExportedDoc(project *model.Project, doc model.Document) exportedDoc {
	out := exportedDoc{
		ID:   doc.ID.String(),
		Text: doc.Text,
		Meta: rawMeta(doc),
	}
	switch project.ProjectType {
	case model.ProjectSequenceLabeling:
		out.Annotations = lo.Map(doc.SpanAnnotations, func(a model.SpanAnnotation, _ int) []interface{} {
			return []interface{}{a.StartOffset, a.EndOffset, labelText(a.Label)}
		})
	case model.ProjectSeq2seq, model.ProjectSpeech2text:
		out.Annotations = lo.Map(doc.TextAnnotations, func(a model.TextAnnotation, _ int) string {
			return a.Text
		})
	default:
		out.Annotations = lo.Map(doc.DocAnnotations, func(a model.DocAnnotation, _ int) string {
			return labelText(a.Label)
		})
	}
	return out
}

func renderJSON(project *model.Project, docs []model.Document) ([]byte, error) {
	out := lo.Map(docs, func(doc model.Document, _ int) exportedDoc {
		return toExportedDoc(project, doc)
	})
	return sonic.Marshal(out)
}

func renderJSONL(project *model.Project, docs []model.Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, doc := range docs {
		line, err := sonic.Marshal(toExportedDoc(project, doc))
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// renderFastText writes `__label__L1 __label__L2 text` lines.
func renderFastText(docs []model.Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, doc := range docs {
		var parts []string
		for _, a := range doc.DocAnnotations {
			parts = append(parts, "__label__"+labelText(a.Label))
		}
		parts = append(parts, doc.Text)
		buf.WriteString(strings.Join(parts, " "))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func labelText(l *model.Label) string {
	if l == nil {
		return ""
	}
	return l.Text
}

func rawMeta(doc model.Document) interface{} {
	if len(doc.Meta) == 0 {
		return map[string]interface{}{}
	}
	var m interface{}
	if err := sonic.Unmarshal(doc.Meta, &m); err != nil {
		return map[string]interface{}{}
	}
	return m
}

