package repo

import (
	"context"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepo interface {
	Create(ctx context.Context, m *model.Member) error
	Delete(ctx context.Context, projectID, memberID uuid.UUID) error
	List(ctx context.Context, projectID uuid.UUID) ([]model.Member, error)
	Get(ctx context.Context, userID, projectID uuid.UUID) (*model.Member, error)
}

type memberRepo struct{ db *gorm.DB }

func NewMemberRepo(db *gorm.DB) MemberRepo {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, m *model.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *memberRepo) Delete(ctx context.Context, projectID, memberID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where(&model.Member{ID: memberID, ProjectID: projectID}).
		Delete(&model.Member{}).Error
}

func (r *memberRepo) List(ctx context.Context, projectID uuid.UUID) ([]model.Member, error) {
	var items []model.Member
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Role").
		Where(&model.Member{ProjectID: projectID}).
		Find(&items).Error
	return items, err
}

func (r *memberRepo) Get(ctx context.Context, userID, projectID uuid.UUID) (*model.Member, error) {
	m := &model.Member{}
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where(&model.Member{UserID: userID, ProjectID: projectID}).
		First(m).Error
	return m, err
}
