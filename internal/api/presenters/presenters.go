package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	return c.Status(code).JSON(response{
		Status:  false,
		Message: message,
		Error:   errorDetail(err),
	})
}

// Validator violations expand into per-field detail; any other failure is
// reduced to its message so internals never leak structure.
func errorDetail(err error) any {
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		fields := make([]fiber.Map, 0, len(violations))
		for _, v := range violations {
			fields = append(fields, fiber.Map{
				"field": v.Field(),
				"tag":   v.Tag(),
				"param": v.Param(),
			})
		}
		return fields
	}
	return err.Error()
}
