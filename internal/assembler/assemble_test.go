package assembler

import (
	"testing"

	"quiz-crew/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchOf(n int) []domain.MCQSingle {
	items := make([]domain.MCQSingle, n)
	for i := range items {
		items[i] = domain.MCQSingle{Question: "q", Choices: []string{"a", "b", "c", "d"}, AnswerIndex: i % 4}
	}
	return items
}

func groupsOf(n int) []domain.HintSet {
	groups := make([]domain.HintSet, n)
	for i := range groups {
		groups[i] = domain.HintSet{"h1", "h2", "h3"}
	}
	return groups
}

func TestAssemble_Batch(t *testing.T) {
	content := &domain.ContentResult{Kind: domain.KindMCQBatch, Batch: batchOf(4)}

	t.Run("matching counts", func(t *testing.T) {
		resp, err := Assemble(domain.KindMCQBatch, content, &domain.HintResult{Kind: domain.KindMCQBatch, Groups: groupsOf(4)}, true)
		require.NoError(t, err)
		assert.Len(t, resp.Batch, 4)
		assert.Len(t, resp.HintGroups, 4)
	})

	t.Run("four quizzes three groups", func(t *testing.T) {
		resp, err := Assemble(domain.KindMCQBatch, content, &domain.HintResult{Kind: domain.KindMCQBatch, Groups: groupsOf(3)}, true)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, domain.ErrArityMismatch)

		var de *domain.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, 4, de.Context["items"])
		assert.Equal(t, 3, de.Context["hint_groups"])
	})

	t.Run("more groups than quizzes", func(t *testing.T) {
		_, err := Assemble(domain.KindMCQBatch, content, &domain.HintResult{Kind: domain.KindMCQBatch, Groups: groupsOf(5)}, true)
		assert.ErrorIs(t, err, domain.ErrArityMismatch)
	})
}

func TestAssemble_HintToggle(t *testing.T) {
	mcq := &domain.MCQSingle{Question: "q", Choices: []string{"a", "b", "c", "d"}, AnswerIndex: 2}
	content := &domain.ContentResult{Kind: domain.KindMCQ, MCQ: mcq}
	hints := &domain.HintResult{Kind: domain.KindMCQ, Hints: domain.HintSet{"a", "b", "c"}}

	withHints, err := Assemble(domain.KindMCQ, content, hints, true)
	require.NoError(t, err)
	assert.Equal(t, 2, withHints.MCQ.AnswerIndex)
	assert.Equal(t, domain.HintSet{"a", "b", "c"}, withHints.Hints)

	withoutHints, err := Assemble(domain.KindMCQ, content, hints, false)
	require.NoError(t, err)
	assert.Nil(t, withoutHints.Hints)
	assert.Nil(t, withoutHints.HintGroups)

	_, err = Assemble(domain.KindMCQ, content, nil, true)
	assert.ErrorIs(t, err, domain.ErrParseFailure)

	_, err = Assemble(domain.KindMCQ, content, &domain.HintResult{Kind: domain.KindMCQ}, true)
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

func TestAssemble_SingleKinds(t *testing.T) {
	coding := &domain.ContentResult{Kind: domain.KindCodingQuiz, Coding: &domain.CodingQuiz{Question: "q", AnswerLines: []string{"    x = 1"}}}
	resp, err := Assemble(domain.KindCodingQuiz, coding, &domain.HintResult{Hints: domain.HintSet{"a", "b", "c"}}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"    x = 1"}, resp.Coding.AnswerLines)

	dd := &domain.ContentResult{Kind: domain.KindDragDrop, DragDrop: &domain.DragDrop{PromptText: "p", ItemsToDrag: []string{"b", "a"}, DropZones: []string{"1", "2"}}}
	resp, err = Assemble(domain.KindDragDrop, dd, nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, resp.DragDrop.ItemsToDrag)
}

func TestAssemble_InvalidContent(t *testing.T) {
	_, err := Assemble(domain.KindMCQ, nil, nil, false)
	assert.Error(t, err)

	_, err = Assemble(domain.KindMCQ, &domain.ContentResult{Kind: domain.KindCodingQuiz}, nil, false)
	assert.Error(t, err)

	_, err = Assemble(domain.KindMCQ, &domain.ContentResult{Kind: domain.KindMCQ}, nil, false)
	assert.Error(t, err)
}
