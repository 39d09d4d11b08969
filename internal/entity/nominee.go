package entity

type Nominee struct {
	Base
	CategoryID string   `gorm:"not null;index"`
	Category   Category `gorm:"foreignKey:CategoryID"`

	// EventID duplicates Category.EventID for cheap eligibility checks. It
	// must always match the category's event.
	EventID string `gorm:"not null;index"`
	Event   Event  `gorm:"foreignKey:EventID"`

	Name     string
	ImageURL string
	Position int

	// VoteCount is a denormalized counter. It is only written together with
	// a ballot insert in the same transaction, so it always equals the
	// number of ballots referencing this nominee.
	VoteCount int64

	IsWinner bool
}
