package database

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"movie_catalog/helper"
	"movie_catalog/model"
)

// SeedOptions carries every parameter the provisioning run needs; nothing is
// read from the environment here.
type SeedOptions struct {
	TotalMovies    int
	CinemasPerCity int
	AdminEmail     string
	AdminPassword  string
}

// Seed wipes the five catalog tables and repopulates them: the administrator
// account, movies and actors from TMDB trending, synthetic cinemas per French
// city, and random future screenings. Destructive; must not run against a
// live server.
func Seed(db *gorm.DB, tmdb *helper.TMDBClient, opts SeedOptions) error {
	if tmdb == nil {
		return errors.New("TMDB is not configured (TMDB_API_KEY missing)")
	}

	if err := wipe(db); err != nil {
		return err
	}

	if err := seedAdmin(db, opts.AdminEmail, opts.AdminPassword); err != nil {
		return err
	}

	log.Info().Int("count", opts.TotalMovies).Msg("adding movies")
	if err := seedMovies(db, tmdb, opts.TotalMovies); err != nil {
		return err
	}

	log.Info().Msg("adding cinemas")
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seedCinemas(db, r, opts.CinemasPerCity); err != nil {
		return err
	}

	log.Info().Msg("adding screenings")
	return seedScreenings(db, r, opts.TotalMovies*8)
}

func wipe(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM movie_actors").Error; err != nil {
			return err
		}
		for _, m := range []any{
			&model.Administrator{},
			&model.Screening{},
			&model.Movie{},
			&model.Actor{},
			&model.Cinema{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func seedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return errors.New("admin email or password is not set")
	}

	hash, err := helper.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.Administrator{Email: email, Password: hash}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("admin account created")
	return nil
}

func seedMovies(db *gorm.DB, tmdb *helper.TMDBClient, total int) error {
	movies, err := tmdb.FetchTrendingWithDetails(total)
	if err != nil {
		return err
	}

	seenActors := make(map[int]bool)

	for _, m := range movies {
		movie := model.Movie{
			ID:       uint(m.ID),
			Title:    m.Title,
			Slug:     helper.GenerateUniqueMovieSlug(db, m.Title, 0),
			Duration: m.Runtime,
			Language: m.OriginalLanguage,
			AgeLimit: 0,
			Director: m.Director(),
			Synopsis: m.Overview,
		}
		if photo := m.Photo(); photo != "" {
			movie.Photo = &photo
		}
		if key := m.VideoKey(); key != "" {
			movie.Video = &key
		}

		if err := db.Where(model.Movie{ID: movie.ID}).FirstOrCreate(&movie).Error; err != nil {
			log.Error().Err(err).Str("title", m.Title).Msg("failed to seed movie")
			continue
		}

		for _, cast := range m.Credits.Cast {
			actor := model.Actor{ID: uint(cast.ID), Name: cast.Name}
			if cast.ProfilePath != "" {
				profile := cast.ProfilePath
				actor.Profile = &profile
			}

			if !seenActors[cast.ID] {
				if err := db.Where(model.Actor{ID: actor.ID}).FirstOrCreate(&actor).Error; err != nil {
					log.Error().Err(err).Str("name", cast.Name).Msg("failed to seed actor")
					continue
				}
				seenActors[cast.ID] = true
			}

			if err := db.Model(&movie).Association("Actors").Append(&model.Actor{ID: uint(cast.ID)}); err != nil {
				log.Error().Err(err).Uint("movieId", movie.ID).Msg("failed to link actor")
			}
		}
	}

	log.Info().Msg("movies and actors seeding completed")
	return nil
}

func seedCinemas(db *gorm.DB, r *rand.Rand, perCity int) error {
	if perCity < 1 {
		perCity = 1
	}

	var cinemas []model.Cinema
	for _, city := range helper.FranceCities {
		count := r.Intn(perCity) + 1
		for i := 0; i < count; i++ {
			cinemas = append(cinemas, model.Cinema{
				Name:    helper.RandomCinemaName(r),
				City:    city,
				Address: helper.RandomStreetAddress(r),
			})
		}
	}

	if err := db.CreateInBatches(cinemas, 200).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(cinemas)).Msg("cinema population completed")
	return nil
}

func seedScreenings(db *gorm.DB, r *rand.Rand, total int) error {
	var movies []model.Movie
	if err := db.Find(&movies).Error; err != nil {
		return err
	}
	var cinemas []model.Cinema
	if err := db.Find(&cinemas).Error; err != nil {
		return err
	}
	if len(movies) == 0 || len(cinemas) == 0 {
		return errors.New("cannot seed screenings without movies and cinemas")
	}

	screenings := make([]model.Screening, 0, total)
	for i := 0; i < total; i++ {
		screenings = append(screenings, model.Screening{
			MovieId:   movies[r.Intn(len(movies))].ID,
			CinemaId:  cinemas[r.Intn(len(cinemas))].ID,
			StartTime: time.Now().Add(time.Duration(r.Intn(90*24)+1) * time.Hour),
			Subtitle:  helper.RandomSubtitleLanguage(r),
		})
	}

	if err := db.CreateInBatches(screenings, 500).Error; err != nil {
		return err
	}
	log.Info().Int("count", total).Msg("screening population completed")
	return nil
}
