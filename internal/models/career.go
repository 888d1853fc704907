package models

import (
	"time"

	"gorm.io/datatypes"
)

type DemandLevel string

const (
	DemandLow      DemandLevel = "Low"
	DemandModerate DemandLevel = "Moderate"
	DemandHigh     DemandLevel = "High"
	DemandVeryHigh DemandLevel = "Very High"
)

// Career is one catalog entry. The identifier is the stable short key the quiz
// question bank references in its weight maps (e.g. "eng-software").
type Career struct {
	ID           string `json:"id" gorm:"primaryKey;size:64" validate:"required,max=64"`
	Category     string `json:"category" gorm:"not null;size:64;index" validate:"required,max=64"`
	CareerOption string `json:"career_option" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Stream       string `json:"stream" gorm:"not null;size:64;index" validate:"required,max=64"`
	Description  string `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`

	SkillsRequired datatypes.JSONSlice[string] `json:"skills_required"`

	EntryLevelRoles  string `json:"entry_level_roles" gorm:"size:200"`
	MidLevelRoles    string `json:"mid_level_roles" gorm:"size:200"`
	SeniorLevelRoles string `json:"senior_level_roles" gorm:"size:200"`

	SalaryEntry  int    `json:"salary_entry" validate:"omitempty,min=0"`
	SalarySenior string `json:"salary_senior" gorm:"size:64"`

	// Stored as text: age bounds can be "No limit".
	MinAge string `json:"min_age" gorm:"size:32"`
	MaxAge string `json:"max_age" gorm:"size:32"`

	PassingCriteria12th string                      `json:"passing_criteria_12th" gorm:"size:200"`
	TopColleges         datatypes.JSONSlice[string] `json:"top_colleges"`
	PopularExams        datatypes.JSONSlice[string] `json:"popular_exams"`

	Views          int64                       `json:"views" gorm:"default:0"`
	GrowthRate     string                      `json:"growth_rate" gorm:"size:64"`
	DemandLevel    DemandLevel                 `json:"demand_level" gorm:"size:32"`
	TrendingSkills datatypes.JSONSlice[string] `json:"trending_skills"`
	Roadmap        string                      `json:"roadmap" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Career) TableName() string {
	return "careers"
}
