package service

import (
	"context"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/repo"
	"github.com/google/uuid"
)

type ListDocumentsInput struct {
	ProjectID uuid.UUID
	Limit     int
	Offset    int
}

type ListDocumentsOutput struct {
	Count   int64            `json:"count"`
	Results []model.Document `json:"results"`
}

type DocumentService interface {
	List(ctx context.Context, in ListDocumentsInput) (*ListDocumentsOutput, error)
}

type documentService struct {
	docs repo.DocumentRepo
}

func NewDocumentService(docs repo.DocumentRepo) DocumentService {
	return &documentService{docs: docs}
}

func (s *documentService) List(ctx context.Context, in ListDocumentsInput) (*ListDocumentsOutput, error) {
	items, total, err := s.docs.List(ctx, in.ProjectID, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Document{}
	}
	return &ListDocumentsOutput{Count: total, Results: items}, nil
}
