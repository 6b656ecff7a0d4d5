package repo

import (
	"context"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabelRepo interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Label, error)
	Create(ctx context.Context, l *model.Label) error
}

type labelRepo struct{ db *gorm.DB }

func NewLabelRepo(db *gorm.DB) LabelRepo {
	return &labelRepo{db: db}
}

func (r *labelRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Label, error) {
	var items []model.Label
	err := r.db.WithContext(ctx).
		Where(&model.Label{ProjectID: projectID}).
		Order("created_at").
		Find(&items).Error
	return items, err
}

func (r *labelRepo) Create(ctx context.Context, l *model.Label) error {
	return r.db.WithContext(ctx).Create(l).Error
}
