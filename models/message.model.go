package models

import "gorm.io/gorm"

const (
	MessageCommunity  = "COMMUNITY"
	MessageInstructor = "INSTRUCTOR"
)

type Message struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Content   string `json:"content" gorm:"type:text;not null"`
	Type      string `json:"type" gorm:"default:'COMMUNITY'"` // COMMUNITY, INSTRUCTOR
	IsDeleted bool   `gorm:"default:false"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}
