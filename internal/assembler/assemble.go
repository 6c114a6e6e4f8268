// Package assembler merges parsed content and hints into the response of a
// generation run.
package assembler

import (
	"fmt"

	"quiz-crew/internal/domain"
)

// Assemble maps parsed artifacts to the final shape of kind. Hints are
// omitted when includeHints is false and required when it is true. For the
// batch kind every question needs exactly one hint group; counts are never
// truncated or padded to match.
func Assemble(kind domain.ContentKind, content *domain.ContentResult, hints *domain.HintResult, includeHints bool) (*domain.FinalResponse, error) {
	if content == nil {
		return nil, domain.NewInternalError("no content to assemble", nil)
	}
	if content.Kind != kind {
		return nil, domain.NewInternalError(fmt.Sprintf("content kind %q does not match %q", content.Kind, kind), nil)
	}

	resp := &domain.FinalResponse{Kind: kind}
	switch kind {
	case domain.KindMCQ, domain.KindMCQTrivia:
		resp.MCQ = content.MCQ
	case domain.KindMCQBatch:
		resp.Batch = content.Batch
	case domain.KindCodingQuiz:
		resp.Coding = content.Coding
	case domain.KindDragDrop:
		resp.DragDrop = content.DragDrop
	default:
		return nil, domain.NewInternalError(fmt.Sprintf("unknown content kind %q", kind), nil)
	}
	if resp.MCQ == nil && resp.Batch == nil && resp.Coding == nil && resp.DragDrop == nil {
		return nil, domain.NewInternalError(fmt.Sprintf("content for %q is empty", kind), nil)
	}

	if !includeHints {
		return resp, nil
	}
	if hints == nil {
		return nil, domain.NewParseFailure("hints were requested but no hint output was produced")
	}

	if kind.IsBatch() {
		if len(content.Batch) != len(hints.Groups) {
			return nil, domain.NewArityMismatch(len(content.Batch), len(hints.Groups))
		}
		resp.HintGroups = hints.Groups
		return resp, nil
	}

	if len(hints.Hints) == 0 {
		return nil, domain.NewParseFailure("hint output for %q is empty", kind)
	}
	resp.Hints = hints.Hints
	return resp, nil
}
