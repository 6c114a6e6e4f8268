package handler

import (
	"quiz-crew/internal/domain"
	"quiz-crew/internal/dto"
	"quiz-crew/internal/logger"
	"quiz-crew/internal/middleware"
	"quiz-crew/internal/service"
	"quiz-crew/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HintDefaults reports whether a kind includes hints when the request does not say.
type HintDefaults func(kind domain.ContentKind) bool

// GenerationHandler handles the content generation endpoints.
type GenerationHandler struct {
	service      service.GenerationService
	validator    *validation.Validator
	hintDefaults HintDefaults
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(service service.GenerationService, hintDefaults HintDefaults) *GenerationHandler {
	if hintDefaults == nil {
		hintDefaults = func(kind domain.ContentKind) bool { return kind != domain.KindMCQ }
	}
	return &GenerationHandler{
		service:      service,
		validator:    validation.NewValidator(),
		hintDefaults: hintDefaults,
	}
}

// Root godoc
// @Summary Welcome message
// @Tags meta
// @Produce json
// @Success 200 {object} dto.WelcomeResponse
// @Router / [get]
func (h *GenerationHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.WelcomeResponse{Message: "Welcome to the Quiz Crew API"})
}

// GenerateMCQ godoc
// @Summary Generate a multiple choice question
// @Description Generates one four-choice question tailored to the learner. Hints are off unless requested; the hints key is omitted when off.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerationRequest true "Learner profile"
// @Success 200 {object} dto.MCQResponse
// @Header 200 {string} X-Generation-ID "Generation ID"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mcq [post]
func (h *GenerationHandler) GenerateMCQ(c *fiber.Ctx) error {
	return h.generate(c, domain.KindMCQ)
}

// GenerateTrivia godoc
// @Summary Generate a trivia question
// @Description Generates one four-choice trivia question about the language's history and ecosystem. The hints key is omitted when hints are off.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerationRequest true "Learner profile"
// @Success 200 {object} dto.MCQResponse
// @Header 200 {string} X-Generation-ID "Generation ID"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mcq_trivia [post]
func (h *GenerationHandler) GenerateTrivia(c *fiber.Ctx) error {
	return h.generate(c, domain.KindMCQTrivia)
}

// GenerateMCQBatch godoc
// @Summary Generate a batch of trivia questions
// @Description Generates four trivia questions with exactly three hints each; hints[i] belongs to quizzes[i]. The hints key is omitted when hints are off.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerationRequest true "Learner profile"
// @Success 200 {object} dto.MCQBatchResponse
// @Header 200 {string} X-Generation-ID "Generation ID"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mcq2 [post]
func (h *GenerationHandler) GenerateMCQBatch(c *fiber.Ctx) error {
	return h.generate(c, domain.KindMCQBatch)
}

// GenerateCodingQuiz godoc
// @Summary Generate a coding quiz
// @Description Generates a coding question and its reference answer, one code line per element. The hints key is omitted when hints are off.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerationRequest true "Learner profile"
// @Success 200 {object} dto.CodingQuizResponse
// @Header 200 {string} X-Generation-ID "Generation ID"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /coding_quiz [post]
func (h *GenerationHandler) GenerateCodingQuiz(c *fiber.Ctx) error {
	return h.generate(c, domain.KindCodingQuiz)
}

// GenerateDragDrop godoc
// @Summary Generate a reorder exercise
// @Description Generates shuffled code lines to drag into numbered drop zones. The hints key is omitted when hints are off.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerationRequest true "Learner profile"
// @Success 200 {object} dto.DragDropResponse
// @Header 200 {string} X-Generation-ID "Generation ID"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /drag_drop [post]
func (h *GenerationHandler) GenerateDragDrop(c *fiber.Ctx) error {
	return h.generate(c, domain.KindDragDrop)
}

// GetGeneration godoc
// @Summary Replay a stored generation
// @Tags generation
// @Produce json
// @Param id path string true "Generation ID (ULID)"
// @Success 200 {object} dto.GenerationRecordResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /generations/{id} [get]
func (h *GenerationHandler) GetGeneration(c *fiber.Ctx) error {
	id, ok := c.Locals(middleware.GenerationIDParamKey).(string)
	if !ok {
		id = c.Params("id")
		if errs := h.validator.ValidateGenerationID(id); len(errs) > 0 {
			return errs
		}
	}

	record, err := h.service.GetGeneration(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromGenerationRecord(record))
}

func (h *GenerationHandler) generate(c *fiber.Ctx, kind domain.ContentKind) error {
	body, err := h.requestBody(c)
	if err != nil {
		return err
	}

	includeHints := h.hintDefaults(kind)
	if body.Hints != nil {
		includeHints = *body.Hints
	}

	resp, generationID, err := h.service.Generate(c.UserContext(), body.ToDomain(kind, includeHints))
	if err != nil {
		return err
	}

	out := dto.FromFinalResponse(resp)
	if out == nil {
		logger.Get().Error("Assembled response does not match kind",
			zap.String("kind", kind.String()),
			zap.String("generation_id", generationID))
		return domain.NewInternalError("assembled response does not match kind "+kind.String(), nil)
	}

	c.Locals(middleware.GenerationIDKey, generationID)
	c.Set(middleware.GenerationIDHeader, generationID)
	return c.JSON(out)
}

// requestBody returns the body validated by the validation middleware, or
// parses and validates it when the route is mounted without it.
func (h *GenerationHandler) requestBody(c *fiber.Ctx) (dto.GenerationRequest, error) {
	if req, ok := c.Locals(middleware.GenerationRequestKey).(dto.GenerationRequest); ok {
		return req, nil
	}

	var req dto.GenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return req, domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}
	if errs := h.validator.ValidateGenerationRequest(req); len(errs) > 0 {
		return req, errs
	}
	return req, nil
}
