package model

import "time"

type Screening struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MovieId   uint      `gorm:"not null;index" json:"movieId"`
	CinemaId  uint      `gorm:"not null;index" json:"cinemaId"`
	StartTime time.Time `gorm:"not null" json:"startTime"`
	Subtitle  string    `gorm:"not null" json:"subtitle"`

	Movie  *Movie  `gorm:"foreignKey:MovieId" json:"movie,omitempty"`
	Cinema *Cinema `gorm:"foreignKey:CinemaId" json:"cinema,omitempty"`
}

type CreateScreeningInput struct {
	MovieId   uint      `json:"movieId" validate:"required"`
	CinemaId  uint      `json:"cinemaId" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
	Subtitle  string    `json:"subtitle" validate:"required"`
}

type UpdateScreeningInput struct {
	MovieId   *uint      `json:"movieId"`
	CinemaId  *uint      `json:"cinemaId"`
	StartTime *time.Time `json:"startTime"`
	Subtitle  *string    `json:"subtitle"`
}

// ScreeningMovieRef and ScreeningCinemaRef are the related-entity subsets
// embedded in screening listings.
type ScreeningMovieRef struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type ScreeningCinemaRef struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

type ScreeningResponse struct {
	ID        uint               `json:"id"`
	MovieId   uint               `json:"movieId"`
	CinemaId  uint               `json:"cinemaId"`
	StartTime time.Time          `json:"startTime"`
	Subtitle  string             `json:"subtitle"`
	Movie     ScreeningMovieRef  `json:"movie"`
	Cinema    ScreeningCinemaRef `json:"cinema"`
}
