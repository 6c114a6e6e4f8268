package domain

import (
	"fmt"
	"strings"
)

// ContentKind selects the prompt template, validator and response shape of a generation run.
type ContentKind string

const (
	KindMCQ        ContentKind = "mcq"
	KindMCQTrivia  ContentKind = "mcq_trivia"
	KindMCQBatch   ContentKind = "mcq_batch"
	KindCodingQuiz ContentKind = "coding_quiz"
	KindDragDrop   ContentKind = "drag_drop"
)

// AllKinds lists every supported content kind in route order.
var AllKinds = []ContentKind{KindMCQ, KindMCQTrivia, KindMCQBatch, KindCodingQuiz, KindDragDrop}

// ParseContentKind converts a raw value into a ContentKind.
func ParseContentKind(raw string) (ContentKind, error) {
	k := ContentKind(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range AllKinds {
		if k == known {
			return k, nil
		}
	}
	return "", NewInvalidInputError(fmt.Sprintf("unknown content kind: %q", raw))
}

func (k ContentKind) String() string { return string(k) }

// IsBatch reports whether the kind produces several items with one hint group each.
func (k ContentKind) IsBatch() bool { return k == KindMCQBatch }

const (
	// MCQChoiceCount is the number of answer choices of every multiple choice question.
	MCQChoiceCount = 4
	// MCQBatchSize is the number of questions in a trivia batch.
	MCQBatchSize = 4
	// DragDropMaxItems caps the length of a reorder exercise.
	DragDropMaxItems = 15
	// BatchHintsPerGroup is the exact number of hints per question in a batch.
	BatchHintsPerGroup = 3
)

// HintPolicy bounds the hints generated for one content item.
type HintPolicy struct {
	Min      int
	Max      int
	MaxChars int
}

var hintPolicies = map[ContentKind]HintPolicy{
	KindMCQ:        {Min: 3, Max: 5, MaxChars: 100},
	KindMCQTrivia:  {Min: 3, Max: 5, MaxChars: 100},
	KindMCQBatch:   {Min: BatchHintsPerGroup, Max: BatchHintsPerGroup, MaxChars: 100},
	KindCodingQuiz: {Min: 3, Max: 5, MaxChars: 40},
	KindDragDrop:   {Min: 3, Max: 5, MaxChars: 100},
}

// HintPolicyFor returns the hint bounds of a kind.
func HintPolicyFor(kind ContentKind) HintPolicy {
	return hintPolicies[kind]
}

// GenerationRequest is the immutable input of one pipeline run.
type GenerationRequest struct {
	Kind            ContentKind
	Language        string
	ExperienceYears int
	Username        string
	IncludeHints    bool
}

// MCQSingle is one multiple choice question.
type MCQSingle struct {
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer"`
}

// CodingQuiz is a coding question with its reference answer, one line per element.
type CodingQuiz struct {
	Question    string   `json:"question"`
	AnswerLines []string `json:"answer"`
}

// DragDrop is a "reorder the lines" exercise.
type DragDrop struct {
	PromptText  string   `json:"question_text"`
	ItemsToDrag []string `json:"items_to_drag"`
	DropZones   []string `json:"drop_zones"`
}

// HintSet is an ordered list of progressive hints.
type HintSet []string

// ContentResult is the parsed content artifact. Exactly one field is set, matching Kind.
type ContentResult struct {
	Kind     ContentKind
	MCQ      *MCQSingle
	Batch    []MCQSingle
	Coding   *CodingQuiz
	DragDrop *DragDrop
	Warnings []string
}

// HintResult is the parsed hint artifact. Batch kinds fill Groups, others fill Hints.
type HintResult struct {
	Kind     ContentKind
	Hints    HintSet
	Groups   []HintSet
	Warnings []string
}

// FinalResponse merges content and hints into the outward shape of a kind.
type FinalResponse struct {
	Kind       ContentKind `json:"kind"`
	MCQ        *MCQSingle  `json:"mcq,omitempty"`
	Batch      []MCQSingle `json:"batch,omitempty"`
	Coding     *CodingQuiz `json:"coding,omitempty"`
	DragDrop   *DragDrop   `json:"drag_drop,omitempty"`
	Hints      HintSet     `json:"hints,omitempty"`
	HintGroups []HintSet   `json:"hint_groups,omitempty"`
}
