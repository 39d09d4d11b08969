package entity

// Ballot records one user's vote for one nominee in one category. Ballots
// are immutable and never deleted; they are the audit trail behind the
// nominee vote counters.
//
// The unique index on (UserID, CategoryID) is the authoritative guard
// against double voting, including the race of two concurrent submissions
// from the same user.
type Ballot struct {
	SnowflakeBase

	UserID string `gorm:"not null;uniqueIndex:idx_ballots_user_category"`
	User   User   `gorm:"foreignKey:UserID"`

	EventID string `gorm:"not null;index"`
	Event   Event  `gorm:"foreignKey:EventID"`

	CategoryID string   `gorm:"not null;uniqueIndex:idx_ballots_user_category"`
	Category   Category `gorm:"foreignKey:CategoryID"`

	NomineeID string  `gorm:"not null;index"`
	Nominee   Nominee `gorm:"foreignKey:NomineeID"`
}
