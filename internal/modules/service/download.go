package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/repo"
	"github.com/google/uuid"
)

// Download format names. Upload formats live in textformat; jsonl is
// download-only.
const (
	ExportCSV      = "csv"
	ExportJSON     = "json"
	ExportJSONL    = "jsonl"
	ExportFastText = "txt"
)

// ErrUnsupportedExport flags a format/project-type combination outside the
// compatibility matrix.
var ErrUnsupportedExport = errors.New("format not supported for this project type")

// exportMatrix lists the project types each download format supports.
var exportMatrix = map[string][]string{
	ExportCSV: {
		model.ProjectDocumentClassification,
		model.ProjectSequenceLabeling,
		model.ProjectSeq2seq,
	},
	ExportJSON: {
		model.ProjectDocumentClassification,
		model.ProjectSequenceLabeling,
		model.ProjectSeq2seq,
		model.ProjectSpeech2text,
	},
	ExportJSONL: {
		model.ProjectDocumentClassification,
		model.ProjectSequenceLabeling,
		model.ProjectSeq2seq,
		model.ProjectSpeech2text,
	},
	ExportFastText: {
		model.ProjectDocumentClassification,
	},
}

// CanExport reports whether the format works for the project type. CoNLL and
// plain text are never exportable.
func CanExport(format, projectType string) bool {
	for _, t := range exportMatrix[format] {
		if t == projectType {
			return true
		}
	}
	return false
}

// ExportPayload is a rendered dataset ready to be written to the response.
type ExportPayload struct {
	ContentType string
	Filename    string
	Data        []byte
}

type DownloadService interface {
	Download(ctx context.Context, project *model.Project, format string) (*ExportPayload, error)
}

type downloadService struct {
	docs repo.DocumentRepo
}

func NewDownloadService(docs repo.DocumentRepo) DownloadService {
	return &downloadService{docs: docs}
}

func (s *downloadService) Download(ctx context.Context, project *model.Project, format string) (*ExportPayload, error) {
	if !CanExport(format, project.ProjectType) {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedExport, format, project.ProjectType)
	}

	docs, err := s.docs.ListWithAnnotations(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case ExportCSV:
		data, err = renderCSV(project, docs)
	case ExportJSON:
		data, err = renderJSON(project, docs)
	case ExportJSONL:
		data, err = renderJSONL(project, docs)
	case ExportFastText:
		data, err = renderFastText(docs)
	}
	if err != nil {
		return nil, err
	}

	return &ExportPayload{
		ContentType: exportContentType(format),
		Filename:    fmt.Sprintf("project_%s.%s", shortID(project.ID), exportExt(format)),
		Data:        data,
	}, nil
}

func exportContentType(format string) string {
	switch format {
	case ExportCSV:
		return "text/csv"
	case ExportJSON:
		return "application/json"
	case ExportJSONL:
		return "application/jsonl"
	default:
		return "text/plain"
	}
}

func exportExt(format string) string {
	if format == ExportJSONL {
		return "jsonl"
	}
	return format
}

func shortID(id uuid.UUID) string {
	s := id.String()
	return s[:8]
}
