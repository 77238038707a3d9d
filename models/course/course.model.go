package course

import "gorm.io/gorm"

// Category groups courses on the catalog page
type Category struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Slug      string `json:"slug" gorm:"unique;not null"`
	IsDeleted bool   `gorm:"default:false"`
}

// Course is a purchasable/enrollable unit with ordered lessons
type Course struct {
	gorm.Model
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"default:0"`
	Instructor  string  `json:"instructor"`
	ImageUrl    string  `json:"image_url"`
	Rating      float64 `json:"rating" gorm:"default:0"`
	CategoryID  *uint   `json:"category_id" gorm:"index"`
	PackageID   *uint   `json:"package_id" gorm:"index"` // legacy single-package link
	IsPublished bool    `json:"is_published" gorm:"default:true"`
	IsDeleted   bool    `gorm:"default:false"`

	Category *Category         `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Lessons  []Lesson          `json:"lessons,omitempty" gorm:"foreignKey:CourseID"`
	Outcomes []LearningOutcome `json:"outcomes,omitempty" gorm:"foreignKey:CourseID"`
	Material []Material        `json:"materials,omitempty" gorm:"foreignKey:CourseID"`
}
