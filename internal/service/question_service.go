package service

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/aptitude-labs/aptitude-portal/internal/dto"
	"github.com/aptitude-labs/aptitude-portal/internal/model"
	"github.com/aptitude-labs/aptitude-portal/internal/repository"
)

type QuestionService interface {
	CreateQuestion(author string, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	ListQuestions() ([]dto.QuestionResponse, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(author string, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{}
	copier.Copy(&question, &req)
	question.Author = author
	question.Answer = req.CorrectAnswer

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, err
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) ListQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}
