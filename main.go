package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"

	"movie_catalog/config"
	"movie_catalog/database"
	"movie_catalog/helper"
	"movie_catalog/logger"
	"movie_catalog/router"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb := database.ConnectRedis(cfg)
	cld := helper.InitCloudinary()
	tmdb := helper.NewTMDBClient(cfg)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
	}))

	router.SetupRoutes(app, db, cfg, rdb, cld)

	helper.StartScreeningPurge(db)
	defer helper.StopScreeningPurge()
	if tmdb != nil {
		helper.StartCatalogRefresh(db, tmdb)
		defer helper.StopCatalogRefresh()
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
