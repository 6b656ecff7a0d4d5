package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/repo"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUnknownProjectType is returned for project types outside the enum.
var ErrUnknownProjectType = errors.New("unknown project type")

type CreateProjectInput struct {
	Name        string
	Description string
	ProjectType string
	Guideline   string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
	Guideline   *string
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput, creatorID uuid.UUID) (*model.Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	Get(ctx context.Context, projectID uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, projectID uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, projectID uuid.UUID) error
	// RoleFor resolves the caller's role in a project; empty for non-members.
	// Superusers count as project_admin everywhere.
	RoleFor(ctx context.Context, user *model.User, projectID uuid.UUID) (string, error)
}

type projectService struct {
	projects repo.ProjectRepo
	members  repo.MemberRepo
}

func NewProjectService(projects repo.ProjectRepo, members repo.MemberRepo) ProjectService {
	return &projectService{projects: projects, members: members}
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput, creatorID uuid.UUID) (*model.Project, error) {
	resourceType, ok := model.ResourceTypeFor(in.ProjectType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjectType, in.ProjectType)
	}
	p := &model.Project{
		Name:         in.Name,
		Description:  in.Description,
		ProjectType:  in.ProjectType,
		ResourceType: resourceType,
		Guideline:    in.Guideline,
	}
	if err := s.projects.Create(ctx, p, creatorID); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

func (s *projectService) Get(ctx context.Context, projectID uuid.UUID) (*model.Project, error) {
	return s.projects.GetByID(ctx, projectID)
}

func (s *projectService) Update(ctx context.Context, projectID uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Guideline != nil {
		fields["guideline"] = *in.Guideline
	}
	return s.projects.Update(ctx, projectID, fields)
}

func (s *projectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	return s.projects.Delete(ctx, projectID)
}

func (s *projectService) RoleFor(ctx context.Context, user *model.User, projectID uuid.UUID) (string, error) {
	if user.IsSuperuser {
		return model.RoleProjectAdmin, nil
	}
	m, err := s.members.Get(ctx, user.ID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	if m.Role == nil {
		return "", nil
	}
	return m.Role.Name, nil
}
