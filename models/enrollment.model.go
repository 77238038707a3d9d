package models

import (
	"gorm.io/gorm"

	courseModels "kursdunyasi/models/course"
)

// Enrollment is a (user, course) access grant, independent of Purchase.
// The composite unique index is the store-level guard against
// double-enrollment under concurrent requests: the losing insert fails.
type Enrollment struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID  uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Status    string `json:"status" gorm:"default:'ENROLLED'"`
	IsDeleted bool   `gorm:"default:false"`

	User   User                `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course courseModels.Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
