// Package parser turns sanitized model output into typed, validated content
// and hint results. Every rejection is a *domain.DomainError with
// CodeParseFailure; nothing is coerced or repaired beyond fence removal.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	"quiz-crew/internal/domain"

	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// trivia choices are asked to stay under this many characters.
const triviaChoiceMaxChars = 40

// Options tunes the validator.
type Options struct {
	// StrictLengths turns hint and choice length ceilings into failures instead of warnings.
	StrictLengths bool
}

// Parser validates model artifacts against the contract of a content kind.
// It holds no per-request state and is safe for concurrent use.
type Parser struct {
	opts Options
}

// New creates a Parser.
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// decode checks syntax and schema, then decodes into out.
func decode(text string, schema *jsonschema.Schema, out any) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(text)))
	if err != nil {
		return domain.WrapParseFailure(err, "model output is not valid JSON")
	}
	if err := schema.Validate(doc); err != nil {
		return domain.WrapParseFailure(err, "model output does not match the expected shape")
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return domain.WrapParseFailure(err, "model output has wrong field types")
	}
	return nil
}

type rawMCQ struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   int      `json:"answer"`
}

type rawCodingQuiz struct {
	Question string   `json:"question"`
	Answer   []string `json:"answer"`
}

type rawDragDrop struct {
	QuestionType string   `json:"question_type"`
	QuestionMode string   `json:"question_mode"`
	QuestionText string   `json:"question_text"`
	ItemsToDrag  []string `json:"items_to_drag"`
	DropZones    []string `json:"drop_zones"`
}

type rawHints struct {
	Hints []string `json:"hints"`
}

// ParseContent validates the content artifact of a run.
func (p *Parser) ParseContent(kind domain.ContentKind, text string) (*domain.ContentResult, error) {
	schema, err := contentSchema(kind)
	if err != nil {
		return nil, domain.NewInternalError("content schema unavailable", err)
	}
	clean := Sanitize(text)
	result := &domain.ContentResult{Kind: kind}

	switch kind {
	case domain.KindMCQ, domain.KindMCQTrivia:
		var raw rawMCQ
		if err := decode(clean, schema, &raw); err != nil {
			return nil, err
		}
		mcq, warnings, err := p.checkMCQ(kind, raw, "")
		if err != nil {
			return nil, err
		}
		result.MCQ = mcq
		result.Warnings = warnings

	case domain.KindMCQBatch:
		var raw []rawMCQ
		if err := decode(clean, schema, &raw); err != nil {
			return nil, err
		}
		if len(raw) != domain.MCQBatchSize {
			return nil, domain.NewParseFailure("expected %d quizzes, got %d", domain.MCQBatchSize, len(raw))
		}
		for i, item := range raw {
			mcq, warnings, err := p.checkMCQ(kind, item, fmt.Sprintf("quiz %d: ", i))
			if err != nil {
				return nil, err
			}
			result.Batch = append(result.Batch, *mcq)
			result.Warnings = append(result.Warnings, warnings...)
		}

	case domain.KindCodingQuiz:
		var raw rawCodingQuiz
		if err := decode(clean, schema, &raw); err != nil {
			return nil, err
		}
		// Lines are kept verbatim: indentation is part of the answer.
		result.Coding = &domain.CodingQuiz{Question: raw.Question, AnswerLines: raw.Answer}

	case domain.KindDragDrop:
		var raw rawDragDrop
		if err := decode(clean, schema, &raw); err != nil {
			return nil, err
		}
		dd, warnings, err := checkDragDrop(raw)
		if err != nil {
			return nil, err
		}
		result.DragDrop = dd
		result.Warnings = warnings

	default:
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown content kind: %q", kind))
	}

	return result, nil
}

func (p *Parser) checkMCQ(kind domain.ContentKind, raw rawMCQ, prefix string) (*domain.MCQSingle, []string, error) {
	if len(raw.Choices) != domain.MCQChoiceCount {
		return nil, nil, domain.NewParseFailure("%sexpected %d choices, got %d", prefix, domain.MCQChoiceCount, len(raw.Choices))
	}
	if raw.Answer < 0 || raw.Answer >= len(raw.Choices) {
		return nil, nil, domain.NewParseFailure("%sanswer index %d is out of range [0,%d)", prefix, raw.Answer, len(raw.Choices))
	}

	var warnings []string
	if dups := lo.FindDuplicates(raw.Choices); len(dups) > 0 {
		warnings = append(warnings, fmt.Sprintf("%sduplicate choices: %v", prefix, dups))
	}
	if kind == domain.KindMCQBatch || kind == domain.KindMCQTrivia {
		for i, choice := range raw.Choices {
			if n := utf8.RuneCountInString(choice); n >= triviaChoiceMaxChars {
				msg := fmt.Sprintf("%schoice %d has %d characters (limit %d)", prefix, i, n, triviaChoiceMaxChars)
				if p.opts.StrictLengths {
					return nil, nil, domain.NewParseFailure("%s", msg)
				}
				warnings = append(warnings, msg)
			}
		}
	}

	return &domain.MCQSingle{
		Question:    raw.Question,
		Choices:     raw.Choices,
		AnswerIndex: raw.Answer,
	}, warnings, nil
}

func checkDragDrop(raw rawDragDrop) (*domain.DragDrop, []string, error) {
	if len(raw.ItemsToDrag) > domain.DragDropMaxItems {
		return nil, nil, domain.NewParseFailure("items_to_drag has %d items (limit %d)", len(raw.ItemsToDrag), domain.DragDropMaxItems)
	}
	if err := ValidateDropZones(raw.DropZones, len(raw.ItemsToDrag)); err != nil {
		return nil, nil, err
	}

	var warnings []string
	if LooksUnshuffled(raw.ItemsToDrag) {
		warnings = append(warnings, "items_to_drag appear to be already sorted")
	}
	return &domain.DragDrop{
		PromptText:  raw.QuestionText,
		ItemsToDrag: raw.ItemsToDrag,
		DropZones:   raw.DropZones,
	}, warnings, nil
}

// ValidateDropZones checks zones are "1".."n" in order for n items.
func ValidateDropZones(zones []string, items int) error {
	if len(zones) != items {
		return domain.NewParseFailure("drop_zones has %d labels but items_to_drag has %d items", len(zones), items)
	}
	for i, zone := range zones {
		if zone != strconv.Itoa(i+1) {
			return domain.NewParseFailure("drop_zones[%d] is %q, want %q", i, zone, strconv.Itoa(i+1))
		}
	}
	return nil
}

// LooksUnshuffled reports whether items are already in ascending order.
// There is no ground truth order at this stage, so callers treat it as advisory.
func LooksUnshuffled(items []string) bool {
	return len(items) > 2 && lo.IsSorted(items)
}

// ParseHints validates the hint artifact of a run.
func (p *Parser) ParseHints(kind domain.ContentKind, text string) (*domain.HintResult, error) {
	schema, err := hintsSchema(kind)
	if err != nil {
		return nil, domain.NewInternalError("hints schema unavailable", err)
	}
	clean := Sanitize(text)
	policy := domain.HintPolicyFor(kind)
	result := &domain.HintResult{Kind: kind}

	if kind.IsBatch() {
		var raw []rawHints
		if err := decode(clean, schema, &raw); err != nil {
			return nil, err
		}
		for i, group := range raw {
			warnings, err := p.checkHints(group.Hints, policy, fmt.Sprintf("hint group %d: ", i))
			if err != nil {
				return nil, err
			}
			result.Warnings = append(result.Warnings, warnings...)
		}
		result.Groups = lo.Map(raw, func(group rawHints, _ int) domain.HintSet {
			return domain.HintSet(group.Hints)
		})
		return result, nil
	}

	var raw rawHints
	if err := decode(clean, schema, &raw); err != nil {
		return nil, err
	}
	warnings, err := p.checkHints(raw.Hints, policy, "")
	if err != nil {
		return nil, err
	}
	result.Hints = domain.HintSet(raw.Hints)
	result.Warnings = warnings
	return result, nil
}

func (p *Parser) checkHints(hints []string, policy domain.HintPolicy, prefix string) ([]string, error) {
	if len(hints) < policy.Min || len(hints) > policy.Max {
		if policy.Min == policy.Max {
			return nil, domain.NewParseFailure("%sexpected exactly %d hints, got %d", prefix, policy.Min, len(hints))
		}
		return nil, domain.NewParseFailure("%sexpected %d to %d hints, got %d", prefix, policy.Min, policy.Max, len(hints))
	}

	var warnings []string
	for i, hint := range hints {
		if n := utf8.RuneCountInString(hint); n > policy.MaxChars {
			msg := fmt.Sprintf("%shint %d has %d characters (limit %d)", prefix, i, n, policy.MaxChars)
			if p.opts.StrictLengths {
				return nil, domain.NewParseFailure("%s", msg)
			}
			warnings = append(warnings, msg)
		}
	}
	return warnings, nil
}

// Check validates the raw output of a pipeline task according to its stage.
// It is used as the executor's per-step artifact check.
func (p *Parser) Check(spec domain.TaskSpec, text string) error {
	var err error
	switch spec.Stage {
	case domain.StageContent:
		_, err = p.ParseContent(spec.Kind, text)
	case domain.StageHints:
		_, err = p.ParseHints(spec.Kind, text)
	}
	return err
}
