package entity

import (
	"time"

	"github.com/eventara/backend/pkg/enum"
)

type CollaboratorRole string

var (
	Owner    = enum.New(CollaboratorRole("owner"))
	Editor   = enum.New(CollaboratorRole("editor"))
	Reviewer = enum.New(CollaboratorRole("reviewer"))
)

type Collaborator struct {
	EventID string `gorm:"primaryKey"`
	Event   Event  `gorm:"foreignKey:EventID"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Role      CollaboratorRole
	CreatedBy string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
