package entity

type Category struct {
	Base
	EventID string `gorm:"not null;index"`
	Event   Event  `gorm:"foreignKey:EventID"`

	Name     string
	Position int
}
