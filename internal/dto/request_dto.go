package dto

// CreateQuestionRequest is bound from the authoring form. Fields are accepted
// as submitted; option strings and the correct letter are not validated.
type CreateQuestionRequest struct {
	Category      string `form:"category"`
	Text          string `form:"question"`
	OptionA       string `form:"option_a"`
	OptionB       string `form:"option_b"`
	OptionC       string `form:"option_c"`
	OptionD       string `form:"option_d"`
	CorrectAnswer string `form:"correct_answer"`
}

type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type SubmitAnswerRequest struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}
