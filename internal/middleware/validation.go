package middleware

import (
	"quiz-crew/internal/domain"
	"quiz-crew/internal/dto"
	"quiz-crew/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	// GenerationRequestKey holds the validated dto.GenerationRequest.
	GenerationRequestKey = "validated_generation_request"
	// GenerationIDParamKey holds the validated generation ID path parameter.
	GenerationIDParamKey = "validated_generation_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateGenerationBody parses and validates the learner profile body.
func (vm *ValidationMiddleware) ValidateGenerationBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.GenerationRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
		}

		if errors := vm.validator.ValidateGenerationRequest(req); len(errors) > 0 {
			return errors
		}

		c.Locals(GenerationRequestKey, req)
		return c.Next()
	}
}

// ValidateGenerationID validates the :id path parameter.
func (vm *ValidationMiddleware) ValidateGenerationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateGenerationID(id); len(errors) > 0 {
			return errors
		}

		c.Locals(GenerationIDParamKey, id)
		return c.Next()
	}
}
