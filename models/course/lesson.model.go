package course

import "gorm.io/gorm"

type Lesson struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	VideoUrl  string `json:"video_url" gorm:"not null"`
	Order     int    `json:"order" gorm:"column:lesson_order;default:99"`
	IsDeleted bool   `gorm:"default:false"`
}

type LearningOutcome struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Text      string `json:"text" gorm:"not null"`
	IsDeleted bool   `gorm:"default:false"`
}

type Material struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	FileUrl   string `json:"file_url" gorm:"not null"`
	Type      string `json:"type" gorm:"default:'LINK'"` // LINK, PDF, ZIP
	IsDeleted bool   `gorm:"default:false"`
}
