package service

import (
	"context"
	"strings"
	"testing"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/repo"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

// MockDocumentRepo is a mock implementation of repo.DocumentRepo
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) List(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]model.Document, int64, error) {
	args := m.Called(ctx, projectID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Document), args.Get(1).(int64), args.Error(2)
}

func (m *MockDocumentRepo) ListWithAnnotations(ctx context.Context, projectID uuid.UUID) ([]model.Document, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentRepo) Import(ctx context.Context, fn func(tx repo.ImportTx) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func TestCanExport(t *testing.T) {
	tests := []struct {
		format      string
		projectType string
		want        bool
	}{
		{ExportCSV, model.ProjectDocumentClassification, true},
		{ExportCSV, model.ProjectSequenceLabeling, true},
		{ExportCSV, model.ProjectSeq2seq, true},
		{ExportCSV, model.ProjectSpeech2text, false},
		{ExportJSON, model.ProjectDocumentClassification, true},
		{ExportJSON, model.ProjectSpeech2text, true},
		{ExportJSONL, model.ProjectSequenceLabeling, true},
		{ExportJSONL, model.ProjectSpeech2text, true},
		{ExportFastText, model.ProjectDocumentClassification, true},
		{ExportFastText, model.ProjectSequenceLabeling, false},
		{ExportFastText, model.ProjectSeq2seq, false},
		{"conll", model.ProjectSequenceLabeling, false},
		{"plain", model.ProjectDocumentClassification, false},
	}

	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.projectType, func(t *testing.T) {
			assert.Equal(t, tt.want, CanExport(tt.format, tt.projectType))
		})
	}
}

func classifiedDoc(text, label string) model.Document {
	return model.Document{
		ID:   uuid.New(),
		Text: text,
		Meta: datatypes.JSON(`{}`),
		DocAnnotations: []model.DocAnnotation{
			{Label: &model.Label{Text: label}},
		},
	}
}

func TestDownloadService_CSV(t *testing.T) {
	project := &model.Project{ID: uuid.New(), ProjectType: model.ProjectDocumentClassification}
	docs := []model.Document{
		classifiedDoc("great movie", "positive"),
		{ID: uuid.New(), Text: "no labels yet", Meta: datatypes.JSON(`{}`)},
	}

	repoMock := new(MockDocumentRepo)
	repoMock.On("ListWithAnnotations", mock.Anything, project.ID).Return(docs, nil)

	payload, err := NewDownloadService(repoMock).Download(context.Background(), project, ExportCSV)
	assert.NoError(t, err)
	assert.Equal(t, "text/csv", payload.ContentType)
	assert.True(t, strings.HasSuffix(payload.Filename, ".csv"))

	lines := strings.Split(strings.TrimRight(string(payload.Data), "\n"), "\n")
	assert.Equal(t, "id,text,label,meta", lines[0])
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "great movie,positive")
	assert.Contains(t, lines[2], "no labels yet,,")
	repoMock.AssertExpectations(t)
}

func TestDownloadService_CSVSequenceLabeling(t *testing.T) {
	project := &model.Project{ID: uuid.New(), ProjectType: model.ProjectSequenceLabeling}
	docs := []model.Document{{
		ID:   uuid.New(),
		Text: "Alex lives in London",
		Meta: datatypes.JSON(`{}`),
		SpanAnnotations: []model.SpanAnnotation{
			{StartOffset: 0, EndOffset: 4, Label: &model.Label{Text: "PER"}},
			{StartOffset: 14, EndOffset: 20, Label: &model.Label{Text: "LOC"}},
		},
	}}

	repoMock := new(MockDocumentRepo)
	repoMock.On("ListWithAnnotations", mock.Anything, project.ID).Return(docs, nil)

	payload, err := NewDownloadService(repoMock).Download(context.Background(), project, ExportCSV)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(payload.Data), "\n"), "\n")
	assert.Equal(t, "id,text,label,start_offset,end_offset,meta", lines[0])
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "PER,0,4")
	assert.Contains(t, lines[2], "LOC,14,20")
}

func TestDownloadService_JSONL(t *testing.T) {
	project := &model.Project{ID: uuid.New(), ProjectType: model.ProjectDocumentClassification}
	docs := []model.Document{classifiedDoc("great movie", "positive")}

	repoMock := new(MockDocumentRepo)
	repoMock.On("ListWithAnnotations", mock.Anything, project.ID).Return(docs, nil)

	payload, err := NewDownloadService(repoMock).Download(context.Background(), project, ExportJSONL)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(payload.Filename, ".jsonl"))

	var obj map[string]interface{}
	line := strings.TrimRight(string(payload.Data), "\n")
	assert.NoError(t, sonic.UnmarshalString(line, &obj))
	assert.Equal(t, "great movie", obj["text"])
	assert.Equal(t, []interface{}{"positive"}, obj["annotations"])
	assert.NotContains(t, obj, "labels")
}

func TestDownloadService_JSONSpans(t *testing.T) {
	project := &model.Project{ID: uuid.New(), ProjectType: model.ProjectSequenceLabeling}
	docs := []model.Document{{
		ID:   uuid.New(),
		Text: "Alex",
		SpanAnnotations: []model.SpanAnnotation{
			{StartOffset: 0, EndOffset: 4, Label: &model.Label{Text: "PER"}},
		},
	}}

	repoMock := new(MockDocumentRepo)
	repoMock.On("ListWithAnnotations", mock.Anything, project.ID).Return(docs, nil)

	payload, err := NewDownloadService(repoMock).Download(context.Background(), project, ExportJSON)
	assert.NoError(t, err)

	var out []map[string]interface{}
	assert.NoError(t, sonic.Unmarshal(payload.Data, &out))
	assert.Len(t, out, 1)
	assert.Equal(t, []interface{}{[]interface{}{float64(0), float64(4), "PER"}}, out[0]["annotations"])
}

func TestDownloadService_FastText(t *testing.T) {
	project := &model.Project{ID: uuid.New(), ProjectType: model.ProjectDocumentClassification}
	docs := []model.Document{{
		ID:   uuid.New(),
		Text: "great movie",
		DocAnnotations: []model.DocAnnotation{
			{Label: &model.Label{Text: "positive"}},
			{Label: &model.Label{Text: "fresh"}},
		},
	}}

	repoMock := new(MockDocumentRepo)
	repoMock.On("ListWithAnnotations", mock.Anything, project.ID).Return(docs, nil)

	payload, err := NewDownloadService(repoMock).Download(context.Background(), project, ExportFastText)
	assert.NoError(t, err)
	assert.Equal(t, "__label__positive __label__fresh great movie\n", string(payload.Data))
	assert.True(t, strings.HasSuffix(payload.Filename, ".txt"))
}

func TestDownloadService_UnsupportedCombination(t *testing.T) {
	project := &model.Project{ID: uuid.New(), ProjectType: model.ProjectSpeech2text}

	repoMock := new(MockDocumentRepo)
	_, err := NewDownloadService(repoMock).Download(context.Background(), project, ExportCSV)
	assert.ErrorIs(t, err, ErrUnsupportedExport)
	repoMock.AssertNotCalled(t, "ListWithAnnotations")
}
