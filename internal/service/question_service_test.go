package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptitude-labs/aptitude-portal/internal/dto"
	"github.com/aptitude-labs/aptitude-portal/internal/repository"
	"github.com/aptitude-labs/aptitude-portal/internal/service"
)

func TestCreateAndGetQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewQuestionService(repository.NewQuestionRepository(db))

	created, err := svc.CreateQuestion("Administrator", dto.CreateQuestionRequest{
		Category:      "Verbal",
		Text:          "Pick the synonym of 'rapid'",
		OptionA:       "slow",
		OptionB:       "quick",
		OptionC:       "late",
		OptionD:       "dull",
		CorrectAnswer: "B",
	})
	require.NoError(t, err)
	assert.Equal(t, "Administrator", created.Author)
	assert.Equal(t, "B", created.Answer)
	assert.NotZero(t, created.ID)

	got, err := svc.GetQuestion(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pick the synonym of 'rapid'", got.Text)
	assert.Equal(t, "quick", got.OptionB)

	opts := got.Options()
	require.Len(t, opts, 4)
	assert.Equal(t, "A", opts[0].Label)
	assert.Equal(t, "slow", opts[0].Text)
	assert.Equal(t, "D", opts[3].Label)
}

func TestGetQuestionMissing(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewQuestionService(repository.NewQuestionRepository(db))

	_, err := svc.GetQuestion(12345)
	assert.Error(t, err)
}

func TestListQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewQuestionService(repository.NewQuestionRepository(db))

	list, err := svc.ListQuestions()
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, text := range []string{"first", "second"} {
		_, err := svc.CreateQuestion("Hari", dto.CreateQuestionRequest{Text: text, Category: "Quantitative"})
		require.NoError(t, err)
	}

	list, err = svc.ListQuestions()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "second", list[1].Text)
}
