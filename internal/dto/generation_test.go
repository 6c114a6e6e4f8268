package dto

import (
	"encoding/json"
	"testing"

	"quiz-crew/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFinalResponse_MCQ(t *testing.T) {
	resp := &domain.FinalResponse{
		Kind:  domain.KindMCQ,
		MCQ:   &domain.MCQSingle{Question: "q", Choices: []string{"a", "b", "c", "d"}, AnswerIndex: 2},
		Hints: domain.HintSet{"h1", "h2", "h3"},
	}

	data, err := json.Marshal(FromFinalResponse(resp))
	require.NoError(t, err)
	assert.JSONEq(t, `{"question":"q","choices":["a","b","c","d"],"answer":2,"hints":["h1","h2","h3"]}`, string(data))

	resp.Hints = nil
	data, err = json.Marshal(FromFinalResponse(resp))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hints")
}

func TestFromFinalResponse_Batch(t *testing.T) {
	resp := &domain.FinalResponse{
		Kind: domain.KindMCQBatch,
		Batch: []domain.MCQSingle{
			{Question: "q1", Choices: []string{"a", "b", "c", "d"}, AnswerIndex: 0},
			{Question: "q2", Choices: []string{"a", "b", "c", "d"}, AnswerIndex: 3},
		},
		HintGroups: []domain.HintSet{{"a", "b", "c"}, {"d", "e", "f"}},
	}

	out, ok := FromFinalResponse(resp).(MCQBatchResponse)
	require.True(t, ok)
	assert.Len(t, out.Quizzes, 2)
	assert.Equal(t, 3, out.Quizzes[1].Answer)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}}, out.Hints)
	assert.Nil(t, out.Quizzes[0].Hints)
}

func TestFromFinalResponse_DragDrop(t *testing.T) {
	resp := &domain.FinalResponse{
		Kind:     domain.KindDragDrop,
		DragDrop: &domain.DragDrop{PromptText: "Order", ItemsToDrag: []string{"b", "a"}, DropZones: []string{"1", "2"}},
	}

	data, err := json.Marshal(FromFinalResponse(resp))
	require.NoError(t, err)
	assert.JSONEq(t, `{"question_type":"drag_drop","question_mode":"reorder","question_text":"Order",
		"items_to_drag":["b","a"],"drop_zones":["1","2"]}`, string(data))
}

func TestFromFinalResponse_CodingQuiz(t *testing.T) {
	resp := &domain.FinalResponse{
		Kind:   domain.KindCodingQuiz,
		Coding: &domain.CodingQuiz{Question: "q", AnswerLines: []string{"class A {", "    int x;", "}"}},
		Hints:  domain.HintSet{"a", "b", "c"},
	}

	out, ok := FromFinalResponse(resp).(CodingQuizResponse)
	require.True(t, ok)
	assert.Equal(t, "    int x;", out.Answer[1])
	assert.Len(t, out.Hints, 3)
}

func TestGenerationRequest_ToDomain(t *testing.T) {
	req := GenerationRequest{Username: "Ava", Experience: 3, Language: "Java"}
	got := req.ToDomain(domain.KindMCQ, true)
	assert.Equal(t, domain.GenerationRequest{
		Kind: domain.KindMCQ, Language: "Java", ExperienceYears: 3, Username: "Ava", IncludeHints: true,
	}, got)
}

func TestFromFinalResponse_HintsOffOmitsKey(t *testing.T) {
	responses := []*domain.FinalResponse{
		{Kind: domain.KindMCQ, MCQ: &domain.MCQSingle{Question: "q", Choices: []string{"a", "b", "c", "d"}}},
		{Kind: domain.KindMCQTrivia, MCQ: &domain.MCQSingle{Question: "q", Choices: []string{"a", "b", "c", "d"}}},
		{Kind: domain.KindMCQBatch, Batch: []domain.MCQSingle{{Question: "q", Choices: []string{"a", "b", "c", "d"}}}},
		{Kind: domain.KindCodingQuiz, Coding: &domain.CodingQuiz{Question: "q", AnswerLines: []string{"x"}}},
		{Kind: domain.KindDragDrop, DragDrop: &domain.DragDrop{PromptText: "p", ItemsToDrag: []string{"b", "a"}, DropZones: []string{"1", "2"}}},
	}

	for _, resp := range responses {
		t.Run(resp.Kind.String(), func(t *testing.T) {
			data, err := json.Marshal(FromFinalResponse(resp))
			require.NoError(t, err)

			var body map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(data, &body))
			assert.NotContains(t, body, "hints")
		})
	}
}
