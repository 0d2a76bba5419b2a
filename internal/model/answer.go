package model

import "time"

// Answer records one submission of a selected option. QuestionID is kept as a
// plain column, not a declared foreign key; submissions for unknown questions
// are accepted and retained.
type Answer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	StudentEmail string    `json:"student_email" gorm:"size:120;not null"`
	StudentName  string    `json:"student_name" gorm:"size:100;not null"`
	QuestionID   uint      `json:"question_id" gorm:"not null;index"`
	Answer       string    `json:"answer" gorm:"size:10;not null"`
	Timestamp    string    `json:"timestamp" gorm:"size:50;not null"`
	CreatedAt    time.Time `json:"created_at"`
}
