package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"quiz-crew/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

func stringArray(minItems, maxItems int) map[string]any {
	s := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	if minItems > 0 {
		s["minItems"] = minItems
	}
	if maxItems > 0 {
		s["maxItems"] = maxItems
	}
	return s
}

func mcqSingleDefinition() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "minLength": 1},
			"choices":  stringArray(domain.MCQChoiceCount, domain.MCQChoiceCount),
			"answer":   map[string]any{"type": "integer"},
		},
		"required": []any{"question", "choices", "answer"},
	}
}

func hintsObjectDefinition(policy domain.HintPolicy) map[string]any {
	hints := stringArray(policy.Min, policy.Max)
	hints["items"] = map[string]any{"type": "string", "minLength": 1}
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{"hints": hints},
		"required":   []any{"hints"},
	}
}

func contentDefinition(kind domain.ContentKind) map[string]any {
	switch kind {
	case domain.KindMCQ, domain.KindMCQTrivia:
		return mcqSingleDefinition()
	case domain.KindMCQBatch:
		return map[string]any{
			"type":     "array",
			"items":    mcqSingleDefinition(),
			"minItems": domain.MCQBatchSize,
			"maxItems": domain.MCQBatchSize,
		}
	case domain.KindCodingQuiz:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string", "minLength": 1},
				"answer":   stringArray(1, 0),
			},
			"required": []any{"question", "answer"},
		}
	case domain.KindDragDrop:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question_type": map[string]any{"enum": []any{"drag_drop"}},
				"question_mode": map[string]any{"enum": []any{"reorder"}},
				"question_text": map[string]any{"type": "string", "minLength": 1},
				"items_to_drag": stringArray(1, domain.DragDropMaxItems),
				"drop_zones":    stringArray(1, 0),
			},
			"required": []any{"question_text", "items_to_drag", "drop_zones"},
		}
	}
	panic(fmt.Sprintf("parser: no content schema for kind %q", kind))
}

func hintsDefinition(kind domain.ContentKind) map[string]any {
	policy := domain.HintPolicyFor(kind)
	if kind.IsBatch() {
		return map[string]any{
			"type":     "array",
			"items":    hintsObjectDefinition(policy),
			"minItems": 1,
		}
	}
	return hintsObjectDefinition(policy)
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

func compiledSchema(name string, definition func() map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	raw, err := json.Marshal(definition())
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

func contentSchema(kind domain.ContentKind) (*jsonschema.Schema, error) {
	return compiledSchema(string(kind)+"-content", func() map[string]any { return contentDefinition(kind) })
}

func hintsSchema(kind domain.ContentKind) (*jsonschema.Schema, error) {
	return compiledSchema(string(kind)+"-hints", func() map[string]any { return hintsDefinition(kind) })
}
