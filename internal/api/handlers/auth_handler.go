package handlers

import (
	"errors"

	"github.com/YasserDalali/compaire/domain"
	"github.com/YasserDalali/compaire/internal/api/presenters"
	"github.com/YasserDalali/compaire/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	authHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewAuthHandler(userService user.UserService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	if err := h.userService.Login(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedLogin, err)
		}
		if errors.Is(err, domain.ErrInvalidPassword) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}

	// No session or token artifact is issued on success.
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *authHandler) Register(c *fiber.Ctx) error {
	return presenters.ErrorResponse(c, fiber.StatusNotImplemented, domain.MessageNotImplemented, nil)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	return presenters.ErrorResponse(c, fiber.StatusNotImplemented, domain.MessageNotImplemented, nil)
}
