package model

import (
	"time"

	"github.com/google/uuid"
)

// Project types.
const (
	ProjectDocumentClassification = "DocumentClassification"
	ProjectSequenceLabeling       = "SequenceLabeling"
	ProjectSeq2seq                = "Seq2seq"
	ProjectSpeech2text            = "Speech2text"
)

// Resource subclass tags carried alongside the project type.
const (
	ResourceTextClassification = "TextClassificationProject"
	ResourceSequenceLabeling   = "SequenceLabelingProject"
	ResourceSeq2seq            = "Seq2seqProject"
	ResourceSpeech2text        = "Speech2textProject"
)

// ResourceTypeFor maps a project type to its subclass tag. The second return
// is false for unknown project types.
func ResourceTypeFor(projectType string) (string, bool) {
	switch projectType {
	case ProjectDocumentClassification:
		return ResourceTextClassification, true
	case ProjectSequenceLabeling:
		return ResourceSequenceLabeling, true
	case ProjectSeq2seq:
		return ResourceSeq2seq, true
	case ProjectSpeech2text:
		return ResourceSpeech2text, true
	}
	return "", false
}

type Project struct {
	ID                     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                   string    `gorm:"type:varchar(100);not null" json:"name"`
	Description            string    `gorm:"type:text" json:"description"`
	ProjectType            string    `gorm:"type:varchar(30);not null;index" json:"project_type"`
	ResourceType           string    `gorm:"type:varchar(30);not null" json:"resourcetype"`
	Guideline              string    `gorm:"type:text" json:"guideline"`
	RandomizeDocumentOrder bool      `gorm:"default:false" json:"randomize_document_order"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Members   []Member   `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Labels    []Label    `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Documents []Document `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }
