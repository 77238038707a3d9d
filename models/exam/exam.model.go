package exam

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Exam belongs to a course; a user may attempt it any number of times
type Exam struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	IsDeleted bool   `gorm:"default:false"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:ExamID"`
}

// Question stores its option list as a JSON array. CorrectAnswer holds the
// exact text of the right option; scoring compares submitted option text
// against it, not an index.
type Question struct {
	gorm.Model
	ExamID        uint           `json:"exam_id" gorm:"index;not null"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Options       datatypes.JSON `json:"options" gorm:"not null"`
	CorrectAnswer string         `json:"-" gorm:"not null"`
	IsDeleted     bool           `gorm:"default:false"`
}

// Result is append-only; multiple attempts keep their own rows
type Result struct {
	gorm.Model
	ExamID    uint `json:"exam_id" gorm:"index;not null"`
	UserID    uint `json:"user_id" gorm:"index;not null"`
	Score     int  `json:"score"` // 0-100
	IsDeleted bool `gorm:"default:false"`
}
