package validation

import (
	"strings"
	"unicode/utf8"

	"quiz-crew/internal/domain"
	"quiz-crew/internal/dto"
	"quiz-crew/internal/util"
)

const (
	MaxLanguageLength = 50
	MaxUsernameLength = 100
	MaxExperience     = 60
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerationRequest validates the learner profile shared by all generation endpoints.
func (v *Validator) ValidateGenerationRequest(req dto.GenerationRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	language := strings.TrimSpace(req.Language)
	if language == "" {
		errors = append(errors, domain.NewMissingFieldError("language"))
	} else if utf8.RuneCountInString(language) > MaxLanguageLength {
		errors = append(errors, domain.NewOutOfRangeError("language", utf8.RuneCountInString(language), 1, MaxLanguageLength))
	}

	if req.Experience < 0 || req.Experience > MaxExperience {
		errors = append(errors, domain.NewOutOfRangeError("experience", req.Experience, 0, MaxExperience))
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		errors = append(errors, domain.NewMissingFieldError("username"))
	} else if utf8.RuneCountInString(username) > MaxUsernameLength {
		errors = append(errors, domain.NewOutOfRangeError("username", utf8.RuneCountInString(username), 1, MaxUsernameLength))
	}

	return errors
}

// ValidateGenerationID validates a generation ID path parameter.
func (v *Validator) ValidateGenerationID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
	}
	return nil
}
