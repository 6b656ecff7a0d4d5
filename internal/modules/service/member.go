package service

import (
	"context"
	"errors"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/repo"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUnknownUser = errors.New("unknown user")
	ErrUnknownRole = errors.New("unknown role")
)

type MemberService interface {
	List(ctx context.Context, projectID uuid.UUID) ([]model.Member, error)
	Add(ctx context.Context, projectID uuid.UUID, username, rolename string) (*model.Member, error)
	Remove(ctx context.Context, projectID, memberID uuid.UUID) error
}

type memberService struct {
	members repo.MemberRepo
	users   repo.UserRepo
	roles   repo.RoleRepo
}

func NewMemberService(members repo.MemberRepo, users repo.UserRepo, roles repo.RoleRepo) MemberService {
	return &memberService{members: members, users: users, roles: roles}
}

func (s *memberService) List(ctx context.Context, projectID uuid.UUID) ([]model.Member, error) {
	return s.members.List(ctx, projectID)
}

func (s *memberService) Add(ctx context.Context, projectID uuid.UUID, username, rolename string) (*model.Member, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	role, err := s.roles.GetByName(ctx, rolename)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownRole
		}
		return nil, err
	}
	m := &model.Member{UserID: u.ID, ProjectID: projectID, RoleID: role.ID}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	m.User, m.Role = u, role
	return m, nil
}

func (s *memberService) Remove(ctx context.Context, projectID, memberID uuid.UUID) error {
	return s.members.Delete(ctx, projectID, memberID)
}
