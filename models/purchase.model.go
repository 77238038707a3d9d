package models

import (
	"gorm.io/gorm"

	courseModels "kursdunyasi/models/course"
)

const (
	PurchasePending   = "PENDING"
	PurchaseCompleted = "COMPLETED"
	// Declared for completeness; the observed flow never writes it. Failed
	// attempts stay PENDING and are surfaced by the daily scheduler report.
	PurchaseFailed = "FAILED"
)

// Purchase records one attempt to buy either a Package or a single Course.
// Exactly one of PackageID/CourseID is set. Created PENDING by the purchase
// initiator and moved to COMPLETED only by the payment callback reconciler.
type Purchase struct {
	gorm.Model
	UserID       uint    `json:"user_id" gorm:"index;not null"`
	PackageID    *uint   `json:"package_id" gorm:"index"`
	CourseID     *uint   `json:"course_id" gorm:"index"`
	Amount       float64 `json:"amount" gorm:"not null"`
	Status       string  `json:"status" gorm:"default:'PENDING'"`
	OrderID      string  `json:"order_id" gorm:"uniqueIndex;not null"` // provider correlation (basket) id
	PaymentToken string  `json:"-"`                                    // checkout session token from the provider
	PaymentID    string  `json:"payment_id"`                           // provider payment id, set on completion
	IsDeleted    bool    `gorm:"default:false"`

	User    User                 `json:"-" gorm:"foreignKey:UserID"`
	Package *Package             `json:"package,omitempty" gorm:"foreignKey:PackageID"`
	Course  *courseModels.Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
