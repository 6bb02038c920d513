package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"movie_catalog/config"
	"movie_catalog/database"
	"movie_catalog/helper"
	"movie_catalog/logger"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	movies := flag.Int("movies", cfg.TotalMovies, "number of movies to import from TMDB")
	cinemasPerCity := flag.Int("cinemas-per-city", cfg.TotalCinema, "maximum cinemas generated per city")
	adminEmail := flag.String("admin-email", cfg.AdminEmail, "administrator account email")
	adminPassword := flag.String("admin-password", cfg.AdminPassword, "administrator account password")
	flag.Parse()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	tmdb := helper.NewTMDBClient(cfg)
	opts := database.SeedOptions{
		TotalMovies:    *movies,
		CinemasPerCity: *cinemasPerCity,
		AdminEmail:     *adminEmail,
		AdminPassword:  *adminPassword,
	}
	if err := database.Seed(db, tmdb, opts); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Int("movies", *movies).Msg("seeding complete")
}
