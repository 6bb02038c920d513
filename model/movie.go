package model

type Movie struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"not null;index" validate:"required" json:"title"`
	Slug     string  `gorm:"uniqueIndex" json:"slug"`
	Duration int     `gorm:"not null" validate:"required" json:"duration"`
	Language string  `gorm:"not null" validate:"required" json:"language"`
	AgeLimit int     `gorm:"not null;default:0" json:"ageLimit"`
	Director string  `gorm:"not null" validate:"required" json:"director"`
	Synopsis string  `gorm:"type:text;not null" validate:"required" json:"synopsis"`
	Photo    *string `json:"photo"`
	Video    *string `json:"video"`

	Screenings []Screening `gorm:"foreignKey:MovieId" json:"screenings"`
	Actors     []Actor     `gorm:"many2many:movie_actors" json:"actors"`
}

type CreateMovieInput struct {
	Title    string  `json:"title" validate:"required"`
	Duration int     `json:"duration" validate:"required,gt=0"`
	Language string  `json:"language" validate:"required"`
	AgeLimit *int    `json:"ageLimit" validate:"omitempty,gte=0"`
	Director string  `json:"director" validate:"required"`
	Synopsis string  `json:"synopsis" validate:"required"`
	Photo    *string `json:"photo"`
	Video    *string `json:"video"`
}

type UpdateMovieInput struct {
	Title    *string `json:"title"`
	Duration *int    `json:"duration" validate:"omitempty,gt=0"`
	Language *string `json:"language"`
	AgeLimit *int    `json:"ageLimit" validate:"omitempty,gte=0"`
	Director *string `json:"director"`
	Synopsis *string `json:"synopsis"`
	Photo    *string `json:"photo"`
	Video    *string `json:"video"`
}
