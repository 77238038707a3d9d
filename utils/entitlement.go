package utils

import (
	"kursdunyasi/database"
	"kursdunyasi/models"
)

// ActivePackagePurchase resolves the "latest active package membership"
// policy: the newest COMPLETED purchase that references a package decides
// the user's entitlements (course quota, chat access). There is no expiry
// or renewal concept; buying a new package simply supersedes the old one.
func ActivePackagePurchase(userID uint) (*models.Purchase, error) {
	var purchase models.Purchase
	err := database.Database.Db.
		Where("user_id = ? AND package_id IS NOT NULL AND status = ? AND is_deleted = false",
			userID, models.PurchaseCompleted).
		Preload("Package").
		Order("created_at desc").
		First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}
