package repo

import (
	"context"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	// Create persists the project and enrolls the creator as project_admin
	// in the same transaction.
	Create(ctx context.Context, p *model.Project, creatorID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project, creatorID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		admin := model.Role{}
		if err := tx.Where(&model.Role{Name: model.RoleProjectAdmin}).First(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&model.Member{
			UserID:    creatorID,
			ProjectID: p.ID,
			RoleID:    admin.ID,
		}).Error
	})
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p := &model.Project{}
	return p, r.db.WithContext(ctx).Where(&model.Project{ID: id}).First(p).Error
}

func (r *projectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var items []model.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN members ON members.project_id = projects.id").
		Where("members.user_id = ?", userID).
		Order("projects.created_at").
		Find(&items).Error
	return items, err
}

func (r *projectRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Project, error) {
	p := &model.Project{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&model.Project{ID: id}).First(p).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(p).Updates(fields).Error
	})
	return p, err
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id).Error
}
