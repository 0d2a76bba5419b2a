package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aptitude-labs/aptitude-portal/internal/dto"
	"github.com/aptitude-labs/aptitude-portal/internal/middleware"
	"github.com/aptitude-labs/aptitude-portal/internal/service"
)

const loginErrorMessage = "Invalid credentials. This access is restricted."

type Controller struct {
	authSvc     service.AuthService
	questionSvc service.QuestionService
	answerSvc   service.AnswerService
}

func NewController(authSvc service.AuthService, qSvc service.QuestionService, aSvc service.AnswerService) *Controller {
	return &Controller{
		authSvc:     authSvc,
		questionSvc: qSvc,
		answerSvc:   aSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.IndexHandler)
	router.GET("/explore", ctrl.ExploreHandler)
	router.GET("/login", ctrl.LoginFormHandler)
	router.POST("/login", ctrl.LoginHandler)
	router.GET("/logout", ctrl.LogoutHandler)
	router.GET("/question/:id", ctrl.ViewQuestionHandler)
	router.POST("/submit_answer", ctrl.SubmitAnswerHandler)

	authoring := router.Group("/post_question", middleware.RequireLogin(), middleware.RequireAdmin())
	authoring.GET("", ctrl.PostQuestionFormHandler)
	authoring.POST("", ctrl.PostQuestionHandler)

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
	})
}

func (ctrl *Controller) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Identity": middleware.CurrentIdentity(c),
	})
}

func (ctrl *Controller) ExploreHandler(c *gin.Context) {
	questions, err := ctrl.questionSvc.ListQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		c.String(http.StatusInternalServerError, "Failed to load questions")
		return
	}
	c.HTML(http.StatusOK, "explore.html", gin.H{
		"Identity":  middleware.CurrentIdentity(c),
		"Questions": questions,
	})
}

func (ctrl *Controller) LoginFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (ctrl *Controller) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": loginErrorMessage})
		return
	}

	ident, err := ctrl.authSvc.Authenticate(req.Email, req.Password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": loginErrorMessage})
		return
	}

	if err := middleware.SaveIdentity(c, ident); err != nil {
		log.Error().Err(err).Msg("Failed to save session")
		c.String(http.StatusInternalServerError, "Failed to start session")
		return
	}
	log.Info().Str("email", ident.Email).Str("role", ident.Role).Msg("User logged in")
	c.Redirect(http.StatusFound, "/")
}

func (ctrl *Controller) LogoutHandler(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		log.Error().Err(err).Msg("Failed to clear session")
	}
	c.Redirect(http.StatusFound, "/")
}

func (ctrl *Controller) PostQuestionFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "post_question.html", gin.H{
		"Identity": middleware.CurrentIdentity(c),
	})
}

func (ctrl *Controller) PostQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	ident := middleware.CurrentIdentity(c)
	if _, err := ctrl.questionSvc.CreateQuestion(ident.Name, req); err != nil {
		c.String(http.StatusInternalServerError, "Failed to create question")
		return
	}
	c.Redirect(http.StatusFound, "/explore")
}

func (ctrl *Controller) ViewQuestionHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
		return
	}

	question, err := ctrl.questionSvc.GetQuestion(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{})
			return
		}
		log.Error().Err(err).Uint64("id", id).Msg("Failed to get question")
		c.String(http.StatusInternalServerError, "Failed to load question")
		return
	}

	answers, err := ctrl.answerSvc.ListAnswersForQuestion(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("Failed to count submissions")
	}

	c.HTML(http.StatusOK, "question_page.html", gin.H{
		"Identity":    middleware.CurrentIdentity(c),
		"Question":    question,
		"Submissions": len(answers),
	})
}

func (ctrl *Controller) SubmitAnswerHandler(c *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("Rejected answer submission")
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: "error", Message: "No data provided"})
		return
	}

	if _, err := ctrl.answerSvc.SubmitAnswer(middleware.CurrentIdentity(c), req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{Status: "error", Message: "Failed to save answer"})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success", Message: "Answer saved!"})
}
