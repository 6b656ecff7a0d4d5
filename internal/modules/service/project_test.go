package service

import (
	"context"
	"errors"
	"testing"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project, creatorID uuid.UUID) error {
	args := m.Called(ctx, p, creatorID)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Project, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMemberRepo is a mock implementation of repo.MemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *model.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepo) Delete(ctx context.Context, projectID, memberID uuid.UUID) error {
	args := m.Called(ctx, projectID, memberID)
	return args.Error(0)
}

func (m *MockMemberRepo) List(ctx context.Context, projectID uuid.UUID) ([]model.Member, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Member), args.Error(1)
}

func (m *MockMemberRepo) Get(ctx context.Context, userID, projectID uuid.UUID) (*model.Member, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func TestProjectService_Create(t *testing.T) {
	creatorID := uuid.New()

	tests := []struct {
		name        string
		projectType string
		wantErr     error
		wantRes     string
	}{
		{
			name:        "classification project",
			projectType: model.ProjectDocumentClassification,
			wantRes:     model.ResourceTextClassification,
		},
		{
			name:        "sequence labeling project",
			projectType: model.ProjectSequenceLabeling,
			wantRes:     model.ResourceSequenceLabeling,
		},
		{
			name:        "unknown project type",
			projectType: "ImageClassification",
			wantErr:     ErrUnknownProjectType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := new(MockProjectRepo)
			if tt.wantErr == nil {
				projects.On("Create", mock.Anything, mock.Anything, creatorID).Return(nil)
			}

			svc := NewProjectService(projects, new(MockMemberRepo))
			p, err := svc.Create(context.Background(), CreateProjectInput{
				Name:        "test",
				ProjectType: tt.projectType,
			}, creatorID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				projects.AssertNotCalled(t, "Create")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRes, p.ResourceType)
			projects.AssertExpectations(t)
		})
	}
}

func TestProjectService_RoleFor(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name  string
		user  *model.User
		setup func(*MockMemberRepo)
		want  string
	}{
		{
			name: "superuser is admin everywhere",
			user: &model.User{ID: uuid.New(), IsSuperuser: true},
			want: model.RoleProjectAdmin,
		},
		{
			name: "member role resolves through the assignment",
			user: &model.User{ID: uuid.New()},
			setup: func(members *MockMemberRepo) {
				members.On("Get", mock.Anything, mock.Anything, projectID).Return(&model.Member{
					Role: &model.Role{Name: model.RoleAnnotator},
				}, nil)
			},
			want: model.RoleAnnotator,
		},
		{
			name: "non-member has no role",
			user: &model.User{ID: uuid.New()},
			setup: func(members *MockMemberRepo) {
				members.On("Get", mock.Anything, mock.Anything, projectID).Return(nil, gorm.ErrRecordNotFound)
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := new(MockMemberRepo)
			if tt.setup != nil {
				tt.setup(members)
			}

			svc := NewProjectService(new(MockProjectRepo), members)
			role, err := svc.RoleFor(context.Background(), tt.user, projectID)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestProjectService_RoleForRepoError(t *testing.T) {
	members := new(MockMemberRepo)
	members.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	svc := NewProjectService(new(MockProjectRepo), members)
	_, err := svc.RoleFor(context.Background(), &model.User{ID: uuid.New()}, uuid.New())
	assert.Error(t, err)
}

func TestProjectService_UpdatePatchesOnlySetFields(t *testing.T) {
	projectID := uuid.New()
	name := "renamed"

	projects := new(MockProjectRepo)
	projects.On("Update", mock.Anything, projectID, map[string]interface{}{"name": "renamed"}).
		Return(&model.Project{ID: projectID, Name: "renamed"}, nil)

	svc := NewProjectService(projects, new(MockMemberRepo))
	p, err := svc.Update(context.Background(), projectID, UpdateProjectInput{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "renamed", p.Name)
	projects.AssertExpectations(t)
}
