package model

type Cinema struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null;index" validate:"required" json:"name"`
	City    string `gorm:"not null;index" validate:"required" json:"city"`
	Address string `gorm:"not null" validate:"required" json:"address"`

	Screenings []Screening `gorm:"foreignKey:CinemaId" json:"screenings,omitempty"`
}
