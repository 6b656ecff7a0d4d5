package repo

import (
	"context"

	"github.com/annotext/annotext/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepo interface {
	GetByName(ctx context.Context, name string) (*model.Role, error)
	EnsureDefaults(ctx context.Context) error
}

type roleRepo struct{ db *gorm.DB }

func NewRoleRepo(db *gorm.DB) RoleRepo {
	return &roleRepo{db: db}
}

func (r *roleRepo) GetByName(ctx context.Context, name string) (*model.Role, error) {
	role := &model.Role{}
	return role, r.db.WithContext(ctx).Where(&model.Role{Name: name}).First(role).Error
}

// EnsureDefaults creates the built-in roles when missing.
func (r *roleRepo) EnsureDefaults(ctx context.Context) error {
	for _, name := range []string{model.RoleProjectAdmin, model.RoleAnnotator} {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.Role{Name: name}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
