package models

import (
	"gorm.io/gorm"

	courseModels "kursdunyasi/models/course"
)

// Package is a purchasable bundle granting a course quota and chat access
type Package struct {
	gorm.Model
	Name                 string                `json:"name" gorm:"not null"`
	Description          string                `json:"description"`
	Price                float64               `json:"price" gorm:"default:0"`
	Features             string                `json:"features" gorm:"type:text"` // newline separated marketing bullets
	CourseLimit          *int                  `json:"course_limit"`              // nil = unlimited
	EnableUserChat       bool                  `json:"enable_user_chat" gorm:"default:false"`
	EnableInstructorChat bool                  `json:"enable_instructor_chat" gorm:"default:false"`
	Courses              []courseModels.Course `json:"courses,omitempty" gorm:"many2many:package_courses"` // curated bundles
	IsDeleted            bool                  `gorm:"default:false"`
}
