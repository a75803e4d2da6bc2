package movie

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pierrechami/movies/internal/response"
	"github.com/Pierrechami/movies/internal/validation"
	"github.com/Pierrechami/movies/pkg/constant"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(c *fiber.Ctx) error {
	movies, err := h.repo.List(c.Context(), constant.DefaultMovieListLimit)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "", movies)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var input Movie
	if err := c.BodyParser(&input); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", nil)
	}

	if fields := validation.Struct(input); fields != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", fields)
	}

	created, err := h.repo.Insert(c.Context(), &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "Movie created", created)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("idMovie"))
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid movie ID", nil)
	}

	m, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	if m == nil {
		return response.Fail(c, fiber.StatusNotFound, "Movie not found", nil)
	}

	return response.Success(c, fiber.StatusOK, "", m)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("idMovie"))
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid movie ID", nil)
	}

	var input Movie
	if err := c.BodyParser(&input); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", nil)
	}

	if fields := validation.Struct(input); fields != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", fields)
	}

	updated, err := h.repo.Update(c.Context(), id, &input)
	if err != nil {
		return response.FromError(c, err)
	}
	if updated == nil {
		return response.Fail(c, fiber.StatusNotFound, "Movie not found", "ID not found")
	}

	return response.Success(c, fiber.StatusOK, "Movie updated", updated)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("idMovie"))
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid movie ID", nil)
	}

	deleted, err := h.repo.Delete(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	if !deleted {
		return response.Fail(c, fiber.StatusNotFound, "Movie not found", "ID not found")
	}

	return response.Success(c, fiber.StatusOK, "Movie deleted", nil)
}
