package models

import "time"

// Scholarship is a browsable scholarship listing. Amount is the display
// string ("Up to ₹50,000/year"); MaxAmount is the numeric ceiling used for
// filtering.
type Scholarship struct {
	ID          string `json:"id" gorm:"primaryKey;size:64"`
	Name        string `json:"name" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Provider    string `json:"provider" gorm:"not null;size:200;index" validate:"required,max=200"`
	Amount      string `json:"amount" gorm:"not null;size:100" validate:"required,max=100"`
	Eligibility string `json:"eligibility" gorm:"type:text"`
	Deadline    string `json:"deadline" gorm:"size:64"`
	MaxAmount   int    `json:"max_amount" validate:"omitempty,min=0"`

	CreatedAt time.Time `json:"created_at"`
}

func (Scholarship) TableName() string {
	return "scholarships"
}
