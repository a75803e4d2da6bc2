package theater

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pierrechami/movies/internal/response"
	"github.com/Pierrechami/movies/internal/validation"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(c *fiber.Ctx) error {
	theaters, err := h.repo.List(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "", theaters)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var input Input
	if err := c.BodyParser(&input); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", nil)
	}

	if fields := validation.Struct(input); fields != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", fields)
	}

	nextID, err := h.repo.NextTheaterID(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}

	created, err := h.repo.Insert(c.Context(), &Theater{
		TheaterID: nextID,
		Location:  input.Location,
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "Theater added", created)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("idTheater"))
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid theater ID", nil)
	}

	t, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	if t == nil {
		return response.Fail(c, fiber.StatusNotFound, "Theater not found", nil)
	}

	return response.Success(c, fiber.StatusOK, "", t)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("idTheater"))
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid theater ID", nil)
	}

	var input Input
	if err := c.BodyParser(&input); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", nil)
	}

	if fields := validation.Struct(input); fields != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", fields)
	}

	updated, err := h.repo.Update(c.Context(), id, input.Location)
	if err != nil {
		return response.FromError(c, err)
	}
	if updated == nil {
		return response.Fail(c, fiber.StatusNotFound, "Theater not found for update", nil)
	}

	return response.Success(c, fiber.StatusOK, "Theater updated", updated)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("idTheater"))
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid theater ID", nil)
	}

	deleted, err := h.repo.Delete(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	if !deleted {
		return response.Fail(c, fiber.StatusNotFound, "Theater not found for deletion", nil)
	}

	return response.Success(c, fiber.StatusOK, "Theater deleted", nil)
}
