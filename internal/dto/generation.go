package dto

import (
	"time"

	"quiz-crew/internal/domain"
)

// GenerationRequest is the body of every generation endpoint.
// @Description Learner profile used to tailor the generated content
type GenerationRequest struct {
	Username   string `json:"username" example:"Ava"`
	Experience int    `json:"experience" example:"3"`
	Language   string `json:"language" example:"Java"`
	// Hints overrides the per-endpoint default when set.
	Hints *bool `json:"hints,omitempty"`
}

// ToDomain builds the pipeline input for kind.
func (r GenerationRequest) ToDomain(kind domain.ContentKind, includeHints bool) domain.GenerationRequest {
	return domain.GenerationRequest{
		Kind:            kind,
		Language:        r.Language,
		ExperienceYears: r.Experience,
		Username:        r.Username,
		IncludeHints:    includeHints,
	}
}

// MCQResponse serves /mcq and /mcq_trivia.
// @Description One multiple choice question, answer is the 0-based index of the correct choice
type MCQResponse struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   int      `json:"answer"`
	Hints    []string `json:"hints,omitempty"`
}

// MCQBatchResponse serves /mcq2. hints[i] belongs to quizzes[i].
// Every response omits hints when they are turned off.
type MCQBatchResponse struct {
	Quizzes []MCQResponse `json:"quizzes"`
	Hints   [][]string    `json:"hints,omitempty"`
}

// CodingQuizResponse serves /coding_quiz. Answer lines keep their indentation.
type CodingQuizResponse struct {
	Question string   `json:"question"`
	Answer   []string `json:"answer"`
	Hints    []string `json:"hints,omitempty"`
}

const (
	DragDropQuestionType = "drag_drop"
	DragDropQuestionMode = "reorder"
)

// DragDropResponse serves /drag_drop.
type DragDropResponse struct {
	QuestionType string   `json:"question_type" example:"drag_drop"`
	QuestionMode string   `json:"question_mode" example:"reorder"`
	QuestionText string   `json:"question_text"`
	ItemsToDrag  []string `json:"items_to_drag"`
	DropZones    []string `json:"drop_zones"`
	Hints        []string `json:"hints,omitempty"`
}

// GenerationRecordResponse serves /generations/{id}.
type GenerationRecordResponse struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind"`
	Language   string      `json:"language"`
	Experience int         `json:"experience"`
	Username   string      `json:"username"`
	Model      string      `json:"model"`
	CreatedAt  time.Time   `json:"created_at"`
	Response   interface{} `json:"response"`
}

// WelcomeResponse serves /.
type WelcomeResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of failed generation runs.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

func toMCQResponse(q *domain.MCQSingle, hints domain.HintSet) MCQResponse {
	return MCQResponse{
		Question: q.Question,
		Choices:  q.Choices,
		Answer:   q.AnswerIndex,
		Hints:    hints,
	}
}

// FromFinalResponse maps an assembled response to the wire shape of its kind.
func FromFinalResponse(resp *domain.FinalResponse) interface{} {
	if resp == nil {
		return nil
	}
	switch resp.Kind {
	case domain.KindMCQ, domain.KindMCQTrivia:
		if resp.MCQ == nil {
			return nil
		}
		return toMCQResponse(resp.MCQ, resp.Hints)
	case domain.KindMCQBatch:
		out := MCQBatchResponse{Quizzes: make([]MCQResponse, 0, len(resp.Batch))}
		for i := range resp.Batch {
			out.Quizzes = append(out.Quizzes, toMCQResponse(&resp.Batch[i], nil))
		}
		for _, g := range resp.HintGroups {
			out.Hints = append(out.Hints, g)
		}
		return out
	case domain.KindCodingQuiz:
		if resp.Coding == nil {
			return nil
		}
		return CodingQuizResponse{
			Question: resp.Coding.Question,
			Answer:   resp.Coding.AnswerLines,
			Hints:    resp.Hints,
		}
	case domain.KindDragDrop:
		if resp.DragDrop == nil {
			return nil
		}
		return DragDropResponse{
			QuestionType: DragDropQuestionType,
			QuestionMode: DragDropQuestionMode,
			QuestionText: resp.DragDrop.PromptText,
			ItemsToDrag:  resp.DragDrop.ItemsToDrag,
			DropZones:    resp.DragDrop.DropZones,
			Hints:        resp.Hints,
		}
	default:
		return nil
	}
}

// FromGenerationRecord maps a stored record to its replay shape.
func FromGenerationRecord(rec *domain.GenerationRecord) GenerationRecordResponse {
	return GenerationRecordResponse{
		ID:         rec.ID,
		Kind:       rec.Kind.String(),
		Language:   rec.Language,
		Experience: rec.ExperienceYears,
		Username:   rec.Username,
		Model:      rec.Model,
		CreatedAt:  rec.CreatedAt,
		Response:   FromFinalResponse(rec.Response),
	}
}

// HealthResponse serves /health. Cache is "ok", "disabled" or "unavailable".
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
