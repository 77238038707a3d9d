package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string `json:"name" gorm:"default:''"`
	Email     string `json:"email" gorm:"unique;not null"`
	Password  string `json:"-" gorm:"not null"`
	Role      string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, ADMIN
	Stars     uint   `json:"stars" gorm:"default:0"`        // +1 per passed exam
	IsDeleted bool   `gorm:"default:false"`
}
