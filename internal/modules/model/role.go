package model

import (
	"time"

	"github.com/google/uuid"
)

// Role names.
const (
	RoleProjectAdmin = "project_admin"
	RoleAnnotator    = "annotator"
)

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"name"`
}

func (Role) TableName() string { return "roles" }

// Member is a (user, project, role) assignment. One role per user per project.
type Member struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_user_project" json:"user_id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_user_project" json:"project_id"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null" json:"role_id"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"user,omitempty"`
	Role *Role `gorm:"foreignKey:RoleID;references:ID" json:"role,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Member) TableName() string { return "members" }
