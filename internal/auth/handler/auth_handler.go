package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pierrechami/movies/internal/auth/dto"
	"github.com/Pierrechami/movies/internal/auth/service"
	"github.com/Pierrechami/movies/internal/response"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Incomplete or invalid form", nil)
	}

	user, err := h.auth.Register(c.Context(), input)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, "User created", user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "Invalid credentials", nil)
	}

	result, err := h.auth.Login(c.Context(), input)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.SuccessToken(c, fiber.StatusOK, "Login successful", result.AccessToken, result.User)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), c.Get(fiber.HeaderAuthorization)); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Logout successful", nil)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token, err := h.auth.Refresh(c.Context(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.SuccessToken(c, fiber.StatusOK, "New token generated", token, nil)
}
