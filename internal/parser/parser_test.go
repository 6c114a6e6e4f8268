package parser

import (
	"testing"

	"quiz-crew/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMCQ = `{"question": "Which keyword prevents a Java method from being overridden?", "choices": ["static", "final", "private", "const"], "answer": 1}`

const validBatch = `[
  {"question": "Q1", "choices": ["a", "b", "c", "d"], "answer": 0},
  {"question": "Q2", "choices": ["a", "b", "c", "d"], "answer": 1},
  {"question": "Q3", "choices": ["a", "b", "c", "d"], "answer": 2},
  {"question": "Q4", "choices": ["a", "b", "c", "d"], "answer": 3}
]`

func TestParseContent_MCQ(t *testing.T) {
	p := New(Options{})

	t.Run("valid with fences", func(t *testing.T) {
		res, err := p.ParseContent(domain.KindMCQ, "```json\n"+validMCQ+"\n```")
		require.NoError(t, err)
		require.NotNil(t, res.MCQ)
		assert.Equal(t, 1, res.MCQ.AnswerIndex)
		assert.Len(t, res.MCQ.Choices, 4)
		assert.Equal(t, "final", res.MCQ.Choices[res.MCQ.AnswerIndex])
	})

	tests := []struct {
		name  string
		input string
	}{
		{"missing question", `{"choices": ["a", "b", "c", "d"], "answer": 1}`},
		{"missing choices", `{"question": "q", "answer": 1}`},
		{"missing answer", `{"question": "q", "choices": ["a", "b", "c", "d"]}`},
		{"three choices", `{"question": "q", "choices": ["a", "b", "c"], "answer": 1}`},
		{"five choices", `{"question": "q", "choices": ["a", "b", "c", "d", "e"], "answer": 1}`},
		{"answer as string", `{"question": "q", "choices": ["a", "b", "c", "d"], "answer": "1"}`},
		{"answer out of range", `{"question": "q", "choices": ["a", "b", "c", "d"], "answer": 4}`},
		{"negative answer", `{"question": "q", "choices": ["a", "b", "c", "d"], "answer": -1}`},
		{"not json", `Sure! Here is your quiz: question?`},
		{"trailing comma", `{"question": "q", "choices": ["a", "b", "c", "d"], "answer": 1,}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.ParseContent(domain.KindMCQ, tt.input)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, domain.ErrParseFailure)
		})
	}
}

func TestParseContent_MCQBatch(t *testing.T) {
	p := New(Options{})

	t.Run("exactly four", func(t *testing.T) {
		res, err := p.ParseContent(domain.KindMCQBatch, validBatch)
		require.NoError(t, err)
		assert.Len(t, res.Batch, 4)
		assert.Equal(t, 3, res.Batch[3].AnswerIndex)
	})

	t.Run("three items fail", func(t *testing.T) {
		input := `[
		  {"question": "Q1", "choices": ["a", "b", "c", "d"], "answer": 0},
		  {"question": "Q2", "choices": ["a", "b", "c", "d"], "answer": 1},
		  {"question": "Q3", "choices": ["a", "b", "c", "d"], "answer": 2}
		]`
		_, err := p.ParseContent(domain.KindMCQBatch, input)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("object instead of list", func(t *testing.T) {
		_, err := p.ParseContent(domain.KindMCQBatch, validMCQ)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("long choices are a warning", func(t *testing.T) {
		input := `[
		  {"question": "Q1", "choices": ["this choice is definitely longer than forty characters", "b", "c", "d"], "answer": 0},
		  {"question": "Q2", "choices": ["a", "b", "c", "d"], "answer": 1},
		  {"question": "Q3", "choices": ["a", "b", "c", "d"], "answer": 2},
		  {"question": "Q4", "choices": ["a", "b", "c", "d"], "answer": 3}
		]`
		res, err := p.ParseContent(domain.KindMCQBatch, input)
		require.NoError(t, err)
		assert.NotEmpty(t, res.Warnings)

		_, err = New(Options{StrictLengths: true}).ParseContent(domain.KindMCQBatch, input)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})
}

func TestParseContent_CodingQuiz_PreservesLines(t *testing.T) {
	p := New(Options{})
	input := "```json\n{\"question\": \"Assign two variables\", \"answer\": [\"    x = 1\", \"    y = 2\", \"\"]}\n```"

	res, err := p.ParseContent(domain.KindCodingQuiz, input)
	require.NoError(t, err)
	require.NotNil(t, res.Coding)
	assert.Equal(t, []string{"    x = 1", "    y = 2", ""}, res.Coding.AnswerLines)
}

func TestParseContent_CodingQuiz_Invalid(t *testing.T) {
	p := New(Options{})
	inputs := []string{
		`{"question": "q"}`,
		`{"question": "q", "answer": "x = 1"}`,
		`{"question": "q", "answer": []}`,
		`{"question": "q", "answer": [1, 2]}`,
	}
	for _, in := range inputs {
		_, err := p.ParseContent(domain.KindCodingQuiz, in)
		assert.ErrorIs(t, err, domain.ErrParseFailure, "input %s", in)
	}
}

func TestParseContent_DragDrop(t *testing.T) {
	p := New(Options{})

	t.Run("matching zones pass", func(t *testing.T) {
		input := `{"question_type": "drag_drop", "question_mode": "reorder", "question_text": "Order the lines",
			"items_to_drag": ["return a;", "int a = 1;", "int f() {"], "drop_zones": ["1", "2", "3"]}`
		res, err := p.ParseContent(domain.KindDragDrop, input)
		require.NoError(t, err)
		require.NotNil(t, res.DragDrop)
		assert.Equal(t, "Order the lines", res.DragDrop.PromptText)
		assert.Equal(t, []string{"1", "2", "3"}, res.DragDrop.DropZones)
		assert.Empty(t, res.Warnings)
	})

	t.Run("fewer zones than items fail", func(t *testing.T) {
		input := `{"question_text": "Order", "items_to_drag": ["c", "a", "b"], "drop_zones": ["1", "2"]}`
		_, err := p.ParseContent(domain.KindDragDrop, input)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("non sequential zones fail", func(t *testing.T) {
		input := `{"question_text": "Order", "items_to_drag": ["c", "a", "b"], "drop_zones": ["1", "3", "2"]}`
		_, err := p.ParseContent(domain.KindDragDrop, input)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("zones starting at zero fail", func(t *testing.T) {
		input := `{"question_text": "Order", "items_to_drag": ["c", "a", "b"], "drop_zones": ["0", "1", "2"]}`
		_, err := p.ParseContent(domain.KindDragDrop, input)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("wrong question mode fails", func(t *testing.T) {
		input := `{"question_mode": "match", "question_text": "Order", "items_to_drag": ["c", "a"], "drop_zones": ["1", "2"]}`
		_, err := p.ParseContent(domain.KindDragDrop, input)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("more than fifteen items fail", func(t *testing.T) {
		input := `{"question_text": "Order", "items_to_drag": ["a","b","c","d","e","f","g","h","i","j","k","l","m","n","o","p"],
			"drop_zones": ["1","2","3","4","5","6","7","8","9","10","11","12","13","14","15","16"]}`
		_, err := p.ParseContent(domain.KindDragDrop, input)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("sorted items only warn", func(t *testing.T) {
		input := `{"question_text": "Order", "items_to_drag": ["a", "b", "c"], "drop_zones": ["1", "2", "3"]}`
		res, err := p.ParseContent(domain.KindDragDrop, input)
		require.NoError(t, err)
		assert.Contains(t, res.Warnings, "items_to_drag appear to be already sorted")
	})
}

func TestValidateDropZones(t *testing.T) {
	assert.NoError(t, ValidateDropZones([]string{"1", "2", "3"}, 3))
	assert.ErrorIs(t, ValidateDropZones([]string{"1", "2"}, 3), domain.ErrParseFailure)
	assert.ErrorIs(t, ValidateDropZones([]string{"1", "2", "4"}, 3), domain.ErrParseFailure)
	assert.ErrorIs(t, ValidateDropZones([]string{" 1", "2", "3"}, 3), domain.ErrParseFailure)
}

func TestParseHints(t *testing.T) {
	p := New(Options{})

	t.Run("single kind", func(t *testing.T) {
		res, err := p.ParseHints(domain.KindMCQ, `{"hints": ["Think about inheritance", "Look at modifiers", "Which one blocks overriding?"]}`)
		require.NoError(t, err)
		assert.Len(t, res.Hints, 3)
		assert.Nil(t, res.Groups)
	})

	t.Run("too few hints", func(t *testing.T) {
		_, err := p.ParseHints(domain.KindCodingQuiz, `{"hints": ["one", "two"]}`)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("too many hints", func(t *testing.T) {
		_, err := p.ParseHints(domain.KindDragDrop, `{"hints": ["1", "2", "3", "4", "5", "6"]}`)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("missing hints key", func(t *testing.T) {
		_, err := p.ParseHints(domain.KindMCQ, `{"tips": ["a", "b", "c"]}`)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})

	t.Run("coding quiz length ceiling warns", func(t *testing.T) {
		res, err := p.ParseHints(domain.KindCodingQuiz, `{"hints": ["Think about constructors and encapsulation first", "Fields", "Methods"]}`)
		require.NoError(t, err)
		assert.Len(t, res.Warnings, 1)
	})

	t.Run("batch groups", func(t *testing.T) {
		input := `[{"hints": ["a", "b", "c"]}, {"hints": ["d", "e", "f"]}, {"hints": ["g", "h", "i"]}]`
		res, err := p.ParseHints(domain.KindMCQBatch, input)
		require.NoError(t, err)
		assert.Len(t, res.Groups, 3)
		assert.Equal(t, domain.HintSet{"d", "e", "f"}, res.Groups[1])
	})

	t.Run("batch group with two hints fails", func(t *testing.T) {
		input := `[{"hints": ["a", "b", "c"]}, {"hints": ["d", "e"]}]`
		_, err := p.ParseHints(domain.KindMCQBatch, input)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
	})
}

func TestCheck_DispatchesOnStage(t *testing.T) {
	p := New(Options{})

	content := domain.TaskSpec{Kind: domain.KindMCQ, Stage: domain.StageContent}
	hints := domain.TaskSpec{Kind: domain.KindMCQ, Stage: domain.StageHints}

	assert.NoError(t, p.Check(content, validMCQ))
	assert.ErrorIs(t, p.Check(content, `{"hints": ["a", "b", "c"]}`), domain.ErrParseFailure)
	assert.NoError(t, p.Check(hints, `{"hints": ["a", "b", "c"]}`))
	assert.ErrorIs(t, p.Check(hints, validMCQ), domain.ErrParseFailure)
}
