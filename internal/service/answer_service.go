package service

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/aptitude-labs/aptitude-portal/internal/dto"
	"github.com/aptitude-labs/aptitude-portal/internal/model"
	"github.com/aptitude-labs/aptitude-portal/internal/repository"
)

const (
	// Placeholder identity for unauthenticated submissions.
	GuestEmail = "guest@anonymous"
	GuestName  = "Guest"

	answerTimeLayout = "2006-01-02 15:04:05"
)

type AnswerService interface {
	SubmitAnswer(ident *Identity, req dto.SubmitAnswerRequest) (*dto.AnswerResponse, error)
	ListAnswersForQuestion(questionID uint) ([]dto.AnswerResponse, error)
}

type answerService struct {
	repo repository.AnswerRepository
}

func NewAnswerService(repo repository.AnswerRepository) AnswerService {
	return &answerService{repo: repo}
}

// SubmitAnswer records the submission as-is. The question id is not checked
// against the question table and the option letter is not restricted to A-D;
// every submission is retained, duplicates included.
func (s *answerService) SubmitAnswer(ident *Identity, req dto.SubmitAnswerRequest) (*dto.AnswerResponse, error) {
	email, name := GuestEmail, GuestName
	if ident != nil {
		email, name = ident.Email, ident.Name
	}

	answer := model.Answer{
		StudentEmail: email,
		StudentName:  name,
		QuestionID:   req.QuestionID,
		Answer:       req.Answer,
		Timestamp:    time.Now().Format(answerTimeLayout),
	}

	if err := s.repo.Create(&answer); err != nil {
		log.Error().Err(err).Uint("questionID", req.QuestionID).Msg("Failed to record answer")
		return nil, err
	}

	var resp dto.AnswerResponse
	copier.Copy(&resp, &answer)
	return &resp, nil
}

func (s *answerService) ListAnswersForQuestion(questionID uint) ([]dto.AnswerResponse, error) {
	answers, err := s.repo.FindByQuestionID(questionID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AnswerResponse, 0, len(answers))
	copier.Copy(&resp, &answers)
	return resp, nil
}
