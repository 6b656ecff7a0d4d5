package service

import (
	"context"
	"errors"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/repo"
	"github.com/annotext/annotext/internal/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrDuplicateLabel is returned when a label text already exists in the
	// project.
	ErrDuplicateLabel = errors.New("label text already exists in project")
	// ErrDuplicateShortcut is returned when another label in the project
	// already claimed the prefix/suffix key pair.
	ErrDuplicateShortcut = errors.New("shortcut key already assigned in project")
)

type CreateLabelInput struct {
	Text            string
	PrefixKey       *string
	SuffixKey       *string
	BackgroundColor string
	TextColor       string
}

type LabelService interface {
	List(ctx context.Context, projectID uuid.UUID) ([]model.Label, error)
	Create(ctx context.Context, projectID uuid.UUID, in CreateLabelInput) (*model.Label, error)
}

type labelService struct {
	labels repo.LabelRepo
}

func NewLabelService(labels repo.LabelRepo) LabelService {
	return &labelService{labels: labels}
}

func (s *labelService) List(ctx context.Context, projectID uuid.UUID) ([]model.Label, error) {
	return s.labels.ListByProject(ctx, projectID)
}

func (s *labelService) Create(ctx context.Context, projectID uuid.UUID, in CreateLabelInput) (*model.Label, error) {
	existing, err := s.labels.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, l := range existing {
		if l.Text == in.Text {
			return nil, ErrDuplicateLabel
		}
		if in.SuffixKey != nil && sameKey(l.SuffixKey, in.SuffixKey) && sameKey(l.PrefixKey, in.PrefixKey) {
			return nil, ErrDuplicateShortcut
		}
	}

	l := &model.Label{
		ProjectID:       projectID,
		Text:            in.Text,
		PrefixKey:       in.PrefixKey,
		SuffixKey:       in.SuffixKey,
		BackgroundColor: in.BackgroundColor,
		TextColor:       in.TextColor,
	}
	if l.BackgroundColor == "" {
		l.BackgroundColor = utils.RandomColor()
	}
	if l.TextColor == "" {
		l.TextColor = utils.ContrastTextColor(l.BackgroundColor)
	}
	if err := s.labels.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func sameKey(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
