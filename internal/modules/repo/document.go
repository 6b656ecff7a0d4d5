package repo

import (
	"context"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportTx is the slice of storage an in-flight dataset import may touch.
// Everything runs inside one transaction; a returned error rolls back the
// whole import.
type ImportTx interface {
	LabelsByProject(projectID uuid.UUID) ([]model.Label, error)
	CreateLabel(l *model.Label) error
	CreateDocument(d *model.Document) error
}

type DocumentRepo interface {
	List(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]model.Document, int64, error)
	ListWithAnnotations(ctx context.Context, projectID uuid.UUID) ([]model.Document, error)
	Import(ctx context.Context, fn func(tx ImportTx) error) error
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepo(db *gorm.DB) DocumentRepo {
	return &documentRepo{db: db}
}

func (r *documentRepo) List(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]model.Document, int64, error) {
	var items []model.Document
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Document{}).
		Where(&model.Document{ProjectID: projectID})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *documentRepo) ListWithAnnotations(ctx context.Context, projectID uuid.UUID) ([]model.Document, error) {
	var items []model.Document
	err := r.db.WithContext(ctx).
		Preload("DocAnnotations.Label").
		Preload("SpanAnnotations.Label").
		Preload("TextAnnotations").
		Where(&model.Document{ProjectID: projectID}).
		Order("created_at").
		Find(&items).Error
	return items, err
}

func (r *documentRepo) Import(ctx context.Context, fn func(tx ImportTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&importTx{tx: tx})
	})
}

type importTx struct{ tx *gorm.DB }

func (t *importTx) LabelsByProject(projectID uuid.UUID) ([]model.Label, error) {
	var items []model.Label
	err := t.tx.Where(&model.Label{ProjectID: projectID}).Find(&items).Error
	return items, err
}

func (t *importTx) CreateLabel(l *model.Label) error {
	return t.tx.Create(l).Error
}

// CreateDocument also inserts any annotations attached to the document.
func (t *importTx) CreateDocument(d *model.Document) error {
	return t.tx.Create(d).Error
}
