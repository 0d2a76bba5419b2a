package model

import "time"

type Question struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Author    string    `json:"author" gorm:"size:100;not null"`
	Category  string    `json:"category" gorm:"size:50;not null"`
	Text      string    `json:"text" gorm:"size:500;not null"`
	OptionA   string    `json:"option_a" gorm:"size:200;not null"`
	OptionB   string    `json:"option_b" gorm:"size:200;not null"`
	OptionC   string    `json:"option_c" gorm:"size:200;not null"`
	OptionD   string    `json:"option_d" gorm:"size:200;not null"`
	Answer    string    `json:"answer" gorm:"size:10;not null"` // correct option letter, A-D
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
