package helper

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"movie_catalog/model"
)

var purgeScheduler *cron.Cron

// StartScreeningPurge removes screenings whose start time is more than a day
// in the past, once per hour.
func StartScreeningPurge(db *gorm.DB) {
	purgeScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := purgeScheduler.AddFunc("0 * * * *", func() {
		purgeExpiredScreenings(db)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to start screening purge scheduler")
		return
	}

	purgeScheduler.Start()
	log.Info().Msg("screening purge scheduler started (hourly)")
}

func purgeExpiredScreenings(db *gorm.DB) {
	cutoff := time.Now().Add(-24 * time.Hour)
	result := db.Where("start_time < ?", cutoff).Delete(&model.Screening{})

	if result.Error != nil {
		log.Error().Err(result.Error).Msg("failed to purge expired screenings")
		return
	}
	if result.RowsAffected > 0 {
		log.Info().Int64("count", result.RowsAffected).Msg("purged expired screenings")
	}
}

func StopScreeningPurge() {
	if purgeScheduler != nil {
		purgeScheduler.Stop()
	}
}

var refreshScheduler gocron.Scheduler

// StartCatalogRefresh tops the catalog up with new trending TMDB movies once
// a day. A nil client (no API key) disables the job.
func StartCatalogRefresh(db *gorm.DB, tmdb *TMDBClient) {
	if tmdb == nil {
		log.Warn().Msg("TMDB not configured, catalog refresh disabled")
		return
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Error().Err(err).Msg("failed to create catalog refresh scheduler")
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 0, 0),
			),
		),
		gocron.NewTask(func() { RefreshCatalog(db, tmdb) }),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to schedule catalog refresh")
		return
	}

	refreshScheduler = s
	s.Start()
	log.Info().Msg("catalog refresh scheduler started (daily)")
}

// RefreshCatalog inserts trending movies whose id is not in the catalog yet.
func RefreshCatalog(db *gorm.DB, tmdb *TMDBClient) {
	trending, err := tmdb.FetchTrending(1)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch trending movies")
		return
	}

	added := 0
	for _, m := range trending {
		var count int64
		db.Model(&model.Movie{}).Where("id = ?", m.ID).Count(&count)
		if count > 0 {
			continue
		}

		detail, err := tmdb.FetchMovieByID(m.ID)
		if err != nil {
			log.Error().Err(err).Int("tmdbId", m.ID).Msg("failed to fetch movie detail")
			continue
		}

		movie := model.Movie{
			ID:       uint(detail.ID),
			Title:    detail.Title,
			Slug:     GenerateUniqueMovieSlug(db, detail.Title, 0),
			Duration: detail.Runtime,
			Language: detail.OriginalLanguage,
			Director: detail.Director(),
			Synopsis: detail.Overview,
		}
		if photo := detail.Photo(); photo != "" {
			movie.Photo = &photo
		}
		if key := detail.VideoKey(); key != "" {
			movie.Video = &key
		}

		if err := db.Create(&movie).Error; err != nil {
			log.Error().Err(err).Str("title", movie.Title).Msg("failed to insert movie")
			continue
		}
		added++
	}

	if added > 0 {
		log.Info().Int("count", added).Msg("catalog refresh added movies")
	}
}

func StopCatalogRefresh() {
	if refreshScheduler != nil {
		_ = refreshScheduler.Shutdown()
	}
}
