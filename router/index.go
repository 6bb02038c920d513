package router

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"movie_catalog/config"
	"movie_catalog/handler"
	"movie_catalog/middleware"
	"movie_catalog/validate"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, rdb *redis.Client, cld *cloudinary.Cloudinary) {
	movieHandler := handler.NewMovieHandler(db, cfg.SiteURL, cld)
	actorHandler := handler.NewActorHandler(db)
	screeningHandler := handler.NewScreeningHandler(db)
	authHandler := handler.NewAuthHandler(db, cfg)

	cache := middleware.Cache(rdb, cfg)
	protected := middleware.Protected()

	api := app.Group("/api", logger.New())
	api.Get("/", handler.Welcome)

	api.Post("/signup", authHandler.Signup)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/session", authHandler.Session)

	movie := api.Group("/movie")
	movie.Get("/", cache, movieHandler.GetMovies)
	movie.Post("/", protected, validate.CreateMovie(), movieHandler.CreateMovie)
	movie.Get("/search", cache, movieHandler.SearchMovies)
	movie.Get("/:id/qr", movieHandler.GetMovieQR)
	movie.Post("/:id/poster", protected, movieHandler.UploadPoster)
	movie.Get("/:id", cache, movieHandler.GetMovieDetail)
	movie.Put("/:id", protected, validate.UpdateMovie(), movieHandler.UpdateMovie)
	movie.Delete("/:id", protected, movieHandler.DeleteMovie)

	actor := api.Group("/actors")
	actor.Get("/", cache, actorHandler.GetActors)
	actor.Post("/", protected, validate.CreateActor(), actorHandler.CreateActor)
	actor.Get("/:id", cache, actorHandler.GetActorById)
	actor.Put("/:id", protected, validate.UpdateActor(), actorHandler.UpdateActor)
	actor.Delete("/:id", protected, actorHandler.DeleteActor)

	screening := api.Group("/screenings")
	screening.Get("/", cache, screeningHandler.GetScreenings)
	screening.Post("/", protected, validate.CreateScreening(), screeningHandler.CreateScreening)
	screening.Get("/:id", cache, screeningHandler.GetScreeningById)
	screening.Put("/:id", protected, validate.UpdateScreening(), screeningHandler.UpdateScreening)
	screening.Delete("/:id", protected, screeningHandler.DeleteScreening)
}
