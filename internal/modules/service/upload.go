package service

import (
	"context"
	"errors"
	"io"

	"github.com/annotext/annotext/internal/infra/blob"
	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/repo"
	"github.com/annotext/annotext/internal/pkg/textformat"
	"github.com/annotext/annotext/internal/pkg/utils"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ErrCloudDisabled is returned when no object storage is configured.
var ErrCloudDisabled = errors.New("cloud upload is not configured")

type UploadService interface {
	// Upload parses the file in the declared format and persists the parsed
	// documents and any newly discovered labels, all-or-nothing. Returns the
	// number of documents imported.
	Upload(ctx context.Context, project *model.Project, format string, r io.Reader) (int, error)
	// UploadFromCloud fetches the source file from the configured object
	// storage instead of a request body. Missing containers/objects surface
	// as blob.ErrNotFound.
	UploadFromCloud(ctx context.Context, project *model.Project, format, container, object string) (int, error)
}

type uploadService struct {
	docs      repo.DocumentRepo
	store     blob.ObjectStore
	batchSize int
	log       *zap.Logger
}

func NewUploadService(docs repo.DocumentRepo, store blob.ObjectStore, batchSize int, log *zap.Logger) UploadService {
	return &uploadService{docs: docs, store: store, batchSize: batchSize, log: log}
}

func (s *uploadService) Upload(ctx context.Context, project *model.Project, format string, r io.Reader) (int, error) {
	parser, err := textformat.SelectParser(format)
	if err != nil {
		return 0, err
	}

	count := 0
	err = s.docs.Import(ctx, func(tx repo.ImportTx) error {
		labels, err := newLabelCatalog(tx, project.ID)
		if err != nil {
			return err
		}
		return parser.Parse(r, s.batchSize, func(batch []textformat.Record) error {
			for _, rec := range batch {
				doc, err := s.buildDocument(project, rec, labels)
				if err != nil {
					return err
				}
				if err := tx.CreateDocument(doc); err != nil {
					return err
				}
				count++
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	s.log.Sugar().Infow("dataset imported",
		"project", project.ID, "format", format, "documents", count)
	return count, nil
}

func (s *uploadService) UploadFromCloud(ctx context.Context, project *model.Project, format, container, object string) (int, error) {
	if s.store == nil {
		return 0, ErrCloudDisabled
	}
	body, err := s.store.Fetch(ctx, container, object)
	if err != nil {
		return 0, err
	}
	defer body.Close()
	return s.Upload(ctx, project, format, body)
}

// buildDocument attaches the record's labels as the annotation kind the
// project type calls for: document labels for classification, span labels
// for sequence labeling, text responses for seq2seq and speech2text.
// Sequence labeling consumes spans only; flat labels carry no offsets and
// are ignored there.
func (s *uploadService) buildDocument(project *model.Project, rec textformat.Record, labels *labelCatalog) (*model.Document, error) {
	doc := &model.Document{
		ProjectID: project.ID,
		Text:      rec.Text,
		Meta:      metaJSON(rec.Meta),
	}

	switch project.ProjectType {
	case model.ProjectDocumentClassification:
		for _, text := range rec.Labels {
			l, err := labels.ensure(text)
			if err != nil {
				return nil, err
			}
			doc.DocAnnotations = append(doc.DocAnnotations, model.DocAnnotation{LabelID: l.ID})
		}
	case model.ProjectSequenceLabeling:
		for _, span := range rec.Spans {
			l, err := labels.ensure(span.Type)
			if err != nil {
				return nil, err
			}
			doc.SpanAnnotations = append(doc.SpanAnnotations, model.SpanAnnotation{
				LabelID:     l.ID,
				StartOffset: span.Start,
				EndOffset:   span.End,
			})
		}
	default: // Seq2seq, Speech2text
		for _, text := range rec.Labels {
			doc.TextAnnotations = append(doc.TextAnnotations, model.TextAnnotation{Text: text})
		}
	}
	return doc, nil
}

func metaJSON(meta map[string]interface{}) datatypes.JSON {
	if len(meta) == 0 {
		return datatypes.JSON("{}")
	}
	raw, err := sonic.Marshal(meta)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}

// labelCatalog tracks a project's labels during an import so each discovered
// label is created exactly once and shortcut keys never collide.
type labelCatalog struct {
	tx        repo.ImportTx
	projectID uuid.UUID
	byText    map[string]*model.Label
	taken     map[utils.Shortcut]bool
}

func newLabelCatalog(tx repo.ImportTx, projectID uuid.UUID) (*labelCatalog, error) {
	existing, err := tx.LabelsByProject(projectID)
	if err != nil {
		return nil, err
	}
	c := &labelCatalog{
		tx:        tx,
		projectID: projectID,
		byText:    map[string]*model.Label{},
		taken:     map[utils.Shortcut]bool{},
	}
	for i := range existing {
		l := &existing[i]
		c.byText[l.Text] = l
		c.markTaken(l)
	}
	return c, nil
}

func (c *labelCatalog) ensure(text string) (*model.Label, error) {
	if l, ok := c.byText[text]; ok {
		return l, nil
	}

	l := &model.Label{
		ProjectID:       c.projectID,
		Text:            text,
		BackgroundColor: utils.RandomColor(),
	}
	l.TextColor = utils.ContrastTextColor(l.BackgroundColor)
	if sc, ok := utils.AssignShortcut(text, c.taken); ok {
		if sc.Prefix != "" {
			prefix := sc.Prefix
			l.PrefixKey = &prefix
		}
		suffix := sc.Suffix
		l.SuffixKey = &suffix
	}

	if err := c.tx.CreateLabel(l); err != nil {
		return nil, err
	}
	c.byText[text] = l
	c.markTaken(l)
	return l, nil
}

func (c *labelCatalog) markTaken(l *model.Label) {
	if l.SuffixKey == nil {
		return
	}
	sc := utils.Shortcut{Suffix: *l.SuffixKey}
	if l.PrefixKey != nil {
		sc.Prefix = *l.PrefixKey
	}
	c.taken[sc] = true
}
