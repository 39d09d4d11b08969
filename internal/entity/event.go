package entity

import (
	"time"

	"github.com/eventara/backend/pkg/enum"
)

type EventStatusType string

var (
	// EventPending is the status of a newly created event until an admin
	// reviews it.
	EventPending  = enum.New(EventStatusType("pending"))
	EventApproved = enum.New(EventStatusType("approved"))
	EventRejected = enum.New(EventStatusType("rejected"))
	EventEnded    = enum.New(EventStatusType("ended"))
)

type Event struct {
	Base
	CreatedBy     string `gorm:"not null"`
	CreatedByUser User   `gorm:"foreignKey:CreatedBy"`

	Handle      string `gorm:"unique"`
	Title       string
	Description []byte `gorm:"type:longtext"`
	CoverURL    string
	Status      EventStatusType

	StartTime time.Time
	EndTime   time.Time

	VotingEnabled   bool
	VotingStartTime time.Time
	VotingEndTime   time.Time

	// AllowMultipleVotes is stored but currently has no effect; one ballot
	// per user per category is always enforced.
	AllowMultipleVotes bool
}

// IsVotingOpenAt reports whether ballots are accepted at the given time.
func (e *Event) IsVotingOpenAt(now time.Time) bool {
	if e.Status != EventApproved {
		return false
	}

	if !e.VotingEnabled {
		return false
	}

	return !now.Before(e.VotingStartTime) && !now.After(e.VotingEndTime)
}
