package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aptitude-labs/aptitude-portal/internal/dto"
	"github.com/aptitude-labs/aptitude-portal/internal/model"
	"github.com/aptitude-labs/aptitude-portal/internal/repository"
	"github.com/aptitude-labs/aptitude-portal/internal/service"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Question{}, &model.Answer{}))
	return db
}

func TestSubmitAnswerAnonymousFallsBackToGuest(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAnswerService(repository.NewAnswerRepository(db))

	resp, err := svc.SubmitAnswer(nil, dto.SubmitAnswerRequest{QuestionID: 1, Answer: "B"})
	require.NoError(t, err)

	assert.Equal(t, service.GuestEmail, resp.StudentEmail)
	assert.Equal(t, service.GuestName, resp.StudentName)
	assert.EqualValues(t, 1, resp.QuestionID)
	assert.Equal(t, "B", resp.Answer)

	parsed, err := time.Parse("2006-01-02 15:04:05", resp.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}

func TestSubmitAnswerRecordsSessionIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAnswerService(repository.NewAnswerRepository(db))

	ident := &service.Identity{Email: "hari@aptitude.com", Name: "Hari", Role: "user"}
	_, err := svc.SubmitAnswer(ident, dto.SubmitAnswerRequest{QuestionID: 7, Answer: "D"})
	require.NoError(t, err)

	var row model.Answer
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "hari@aptitude.com", row.StudentEmail)
	assert.Equal(t, "Hari", row.StudentName)
	assert.EqualValues(t, 7, row.QuestionID)
}

func TestSubmitAnswerKeepsDuplicatesAndUnknownQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAnswerService(repository.NewAnswerRepository(db))

	// The question table is empty; submissions are still accepted, and
	// repeated submissions are all retained.
	for i := 0; i < 3; i++ {
		_, err := svc.SubmitAnswer(nil, dto.SubmitAnswerRequest{QuestionID: 42, Answer: "Z"})
		require.NoError(t, err)
	}

	answers, err := svc.ListAnswersForQuestion(42)
	require.NoError(t, err)
	assert.Len(t, answers, 3)
	assert.Equal(t, "Z", answers[0].Answer)
}
