package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pierrechami/movies/internal/auth/handler"
	"github.com/Pierrechami/movies/internal/comment"
	"github.com/Pierrechami/movies/internal/movie"
	"github.com/Pierrechami/movies/internal/theater"
)

func RegisterRoutes(app *fiber.App, auth *handler.AuthHandler, movies *movie.Handler, theaters *theater.Handler, comments *comment.Handler) {
	authGroup := app.Group("/auth")
	authGroup.Post("/register", auth.Register)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/logout", auth.Logout)
	authGroup.Post("/refresh-token", auth.Refresh)

	api := app.Group("/api")

	api.Get("/movies", movies.List)
	api.Post("/movies", movies.Create)
	api.Get("/movies/:idMovie", movies.Get)
	api.Put("/movies/:idMovie", movies.Update)
	api.Delete("/movies/:idMovie", movies.Delete)

	api.Get("/movies/:idMovie/comments", comments.List)
	api.Post("/movies/:idMovie/comments", comments.Create)
	api.Get("/movies/:idMovie/comments/:idComment", comments.Get)
	api.Put("/movies/:idMovie/comments/:idComment", comments.Update)
	api.Delete("/movies/:idMovie/comments/:idComment", comments.Delete)

	api.Get("/theaters", theaters.List)
	api.Post("/theaters", theaters.Create)
	api.Get("/theaters/:idTheater", theaters.Get)
	api.Put("/theaters/:idTheater", theaters.Update)
	api.Delete("/theaters/:idTheater", theaters.Delete)
}
