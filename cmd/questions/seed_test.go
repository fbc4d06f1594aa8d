package main

import (
	"testing"

	questionservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/application"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuestions(t *testing.T) {
	questions := generateQuestions(gofakeit.New(7), 25)
	require.Len(t, questions, 25)
	for _, q := range questions {
		require.NoError(t, questionservice.ValidateInput(q.Question, q.Options, q.CorrectAnswer, q.Category))
		assert.Contains(t, seedCategories, q.Category)
		require.NotNil(t, q.SubCategory)
		assert.Contains(t, seedCategories[q.Category], *q.SubCategory)
		assert.Contains(t, seedDifficulties, q.Difficulty)
	}
}

func TestGenerateQuestionsIsReproducible(t *testing.T) {
	a := generateQuestions(gofakeit.New(99), 5)
	b := generateQuestions(gofakeit.New(99), 5)
	assert.Equal(t, a, b)
}
