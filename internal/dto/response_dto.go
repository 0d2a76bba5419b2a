package dto

import "time"

type QuestionResponse struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Text      string    `json:"text"`
	OptionA   string    `json:"option_a"`
	OptionB   string    `json:"option_b"`
	OptionC   string    `json:"option_c"`
	OptionD   string    `json:"option_d"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

type LabeledOption struct {
	Label string
	Text  string
}

// Options mirrors model.Question.Options for template rendering.
func (q *QuestionResponse) Options() []LabeledOption {
	return []LabeledOption{
		{Label: "A", Text: q.OptionA},
		{Label: "B", Text: q.OptionB},
		{Label: "C", Text: q.OptionC},
		{Label: "D", Text: q.OptionD},
	}
}

type AnswerResponse struct {
	ID           uint   `json:"id"`
	StudentEmail string `json:"student_email"`
	StudentName  string `json:"student_name"`
	QuestionID   uint   `json:"question_id"`
	Answer       string `json:"answer"`
	Timestamp    string `json:"timestamp"`
}

// StatusResponse is the fixed acknowledgment shape of the answer endpoint.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
