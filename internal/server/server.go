// Package server assembles the fiber application: middleware, repositories,
// services, handlers and the route table.
package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Pierrechami/movies/config"
	"github.com/Pierrechami/movies/internal/auth/handler"
	"github.com/Pierrechami/movies/internal/auth/repository/mongodb"
	"github.com/Pierrechami/movies/internal/auth/service"
	"github.com/Pierrechami/movies/internal/comment"
	"github.com/Pierrechami/movies/internal/movie"
	"github.com/Pierrechami/movies/internal/theater"
)

func New(cfg *config.Config, log *slog.Logger, mdb *mongo.Database) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "movies-api"})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())

	authRepo := mongodb.NewRepository(mdb)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	authService := service.NewAuthService(authRepo, authRepo, tokenService, log)
	authHandler := handler.NewAuthHandler(authService)

	movieHandler := movie.NewHandler(movie.NewMongoRepository(mdb))
	theaterHandler := theater.NewHandler(theater.NewMongoRepository(mdb))
	commentHandler := comment.NewHandler(comment.NewMongoRepository(mdb))

	RegisterRoutes(app, authHandler, movieHandler, theaterHandler, commentHandler)

	return app
}
