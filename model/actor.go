package model

type Actor struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null;index" validate:"required" json:"name"`
	Profile *string `json:"profile"`

	Movies []Movie `gorm:"many2many:movie_actors" json:"-"`
}

type CreateActorInput struct {
	Name    string  `json:"name" validate:"required"`
	Profile *string `json:"profile"`
}

// UpdateActorInput replaces name and profile wholesale; an omitted profile
// clears the stored one, mirroring the public contract.
type UpdateActorInput struct {
	Name    string  `json:"name" validate:"required"`
	Profile *string `json:"profile"`
}
