package model

import (
	"time"

	"github.com/google/uuid"
)

// Shortcut prefix keys, in assignment preference order (none first).
var PrefixKeys = []string{"ctrl", "shift", "ctrl shift"}

type Label struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_label_project_text;uniqueIndex:idx_label_project_shortcut" json:"project_id"`
	Text      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_label_project_text" json:"text"`

	// Shortcut-less labels carry NULL keys and stay exempt from the
	// shortcut uniqueness index.
	PrefixKey *string `gorm:"type:varchar(10);uniqueIndex:idx_label_project_shortcut" json:"prefix_key"`
	SuffixKey *string `gorm:"type:varchar(1);uniqueIndex:idx_label_project_shortcut" json:"suffix_key"`

	BackgroundColor string `gorm:"type:varchar(7);not null" json:"background_color"`
	TextColor       string `gorm:"type:varchar(7);not null" json:"text_color"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Label) TableName() string { return "labels" }
