package comment

import (
	"time"

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
	movieID, err := primitive.ObjectIDFromHex(c.Params("idMovie"))
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid movie ID", nil)
	}

	comments, err := h.repo.ListByMovie(c.Context(), movieID)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "", comments)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	movieID, err := primitive.ObjectIDFromHex(c.Params("idMovie"))
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid movie ID", nil)
	}

	var input Input
	if err := c.BodyParser(&input); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", nil)
	}

	if fields := validation.Struct(input); fields != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", fields)
	}

	created, err := h.repo.Insert(c.Context(), &Comment{
		Name:    input.Name,
		Email:   input.Email,
		MovieID: movieID,
		Text:    input.Text,
		Date:    time.Now(),
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "Comment added", created)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	movieID, commentID, err := pathIDs(c)
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid movie ID or comment ID", nil)
	}

	comment, err := h.repo.Get(c.Context(), movieID, commentID)
	if err != nil {
		return response.FromError(c, err)
	}
	if comment == nil {
		return response.Fail(c, fiber.StatusNotFound, "Comment not found", nil)
	}

	return response.Success(c, fiber.StatusOK, "", comment)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	movieID, commentID, err := pathIDs(c)
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid movie ID or comment ID", nil)
	}

	var input Input
	if err := c.BodyParser(&input); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", nil)
	}

	if fields := validation.Struct(input); fields != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid input", fields)
	}

	updated, err := h.repo.Update(c.Context(), movieID, commentID, input)
	if err != nil {
		return response.FromError(c, err)
	}
	if updated == nil {
		return response.Fail(c, fiber.StatusNotFound, "Comment not found", nil)
	}

	return response.Success(c, fiber.StatusOK, "", updated)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	movieID, commentID, err := pathIDs(c)
	if err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid movie ID or comment ID", nil)
	}

	deleted, err := h.repo.Delete(c.Context(), movieID, commentID)
	if err != nil {
		return response.FromError(c, err)
	}
	if !deleted {
		return response.Fail(c, fiber.StatusNotFound, "Comment not found", nil)
	}

	return response.Success(c, fiber.StatusOK, "Comment deleted", nil)
}

func pathIDs(c *fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, error) {
	movieID, err := primitive.ObjectIDFromHex(c.Params("idMovie"))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}

	commentID, err := primitive.ObjectIDFromHex(c.Params("idComment"))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}

	return movieID, commentID, nil
}
