package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Document struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Meta      datatypes.JSON `gorm:"type:jsonb" swaggertype:"object" json:"meta"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	DocAnnotations  []DocAnnotation  `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"doc_annotations,omitempty"`
	SpanAnnotations []SpanAnnotation `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"span_annotations,omitempty"`
	TextAnnotations []TextAnnotation `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"text_annotations,omitempty"`
}

func (Document) TableName() string { return "documents" }

// DocAnnotation is a document-level label (classification projects).
type DocAnnotation struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;index" json:"document_id"`
	LabelID    uuid.UUID `gorm:"type:uuid;not null" json:"label_id"`

	Label *Label `gorm:"foreignKey:LabelID;references:ID;constraint:OnDelete:CASCADE;" json:"label,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DocAnnotation) TableName() string { return "doc_annotations" }

// SpanAnnotation is a character-offset span label (sequence labeling projects).
type SpanAnnotation struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DocumentID  uuid.UUID `gorm:"type:uuid;not null;index" json:"document_id"`
	LabelID     uuid.UUID `gorm:"type:uuid;not null" json:"label_id"`
	StartOffset int       `gorm:"not null" json:"start_offset"`
	EndOffset   int       `gorm:"not null" json:"end_offset"`

	Label *Label `gorm:"foreignKey:LabelID;references:ID;constraint:OnDelete:CASCADE;" json:"label,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SpanAnnotation) TableName() string { return "span_annotations" }

// TextAnnotation is a free-text response (seq2seq pairs, speech transcripts).
type TextAnnotation struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;index" json:"document_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TextAnnotation) TableName() string { return "text_annotations" }
