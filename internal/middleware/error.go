package middleware

import (
	"errors"
	"net/http"

	"quiz-crew/internal/domain"
	"quiz-crew/internal/dto"
	"quiz-crew/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// ErrorHandler is the centralized fiber error handler.
// Generation pipeline failures keep the {"detail"} body clients already parse.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(zap.String("path", c.Path()))
		if id, ok := c.Locals(GenerationIDKey).(string); ok && id != "" {
			log = log.With(zap.String("generation_id", id))
		}

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Validation errors occurred", zap.Int("error_count", len(validationErrs)))
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			if isPipelineError(domainErr) {
				log.Error("Generation failed",
					zap.String("code", string(domainErr.Code)),
					zap.Bool("transient", domainErr.Transient),
					zap.Error(err))
				return c.Status(statusCode).JSON(dto.ErrorResponse{
					Detail: err.Error(),
					Code:   string(domainErr.Code),
				})
			}

			if statusCode >= http.StatusInternalServerError {
				log.Error("Domain error occurred",
					zap.String("code", string(domainErr.Code)),
					zap.Int("status", statusCode),
					zap.Error(err))
			} else {
				log.Info("Request rejected",
					zap.String("code", string(domainErr.Code)),
					zap.Int("status", statusCode),
					zap.String("message", domainErr.Message))
			}

			response := ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Status:  statusCode,
			}
			if len(domainErr.Context) > 0 {
				response.Details = domainErr.Context
			}
			return c.Status(statusCode).JSON(response)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message))
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		log.Error("Unknown error occurred", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}

func isPipelineError(err *domain.DomainError) bool {
	switch err.Code {
	case domain.CodeBackendError, domain.CodeParseFailure, domain.CodeArityMismatch:
		return true
	default:
		return false
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeMissingField,
		domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
