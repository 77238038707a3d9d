package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"kursdunyasi/database"
	"kursdunyasi/models"
)

// InitializePurchaseScheduler sets up the daily stale purchase report
func InitializePurchaseScheduler() {
	log.Println("[PURCHASE-SCHEDULER] Initializing purchase scheduler...")

	c := cron.New()

	// Run daily at 9 AM to report purchases stuck in PENDING
	c.AddFunc("0 9 * * *", func() {
		log.Println("[PURCHASE-SCHEDULER] Running daily stale purchase report...")
		ReportStalePendingPurchases()
	})

	c.Start()
	log.Println("[PURCHASE-SCHEDULER] Purchase scheduler started - runs daily at 9 AM")
}

// ReportStalePendingPurchases logs purchases that have been PENDING for more
// than 24 hours: abandoned checkouts, provider timeouts and failed payments
// all end up here. The rows are only reported, never mutated; reconciliation
// against the provider is a manual step.
func ReportStalePendingPurchases() {
	db := database.Database.Db
	cutoff := time.Now().Add(-24 * time.Hour)

	var stale []models.Purchase
	if err := db.
		Where("status = ? AND is_deleted = false AND created_at < ?", models.PurchasePending, cutoff).
		Order("created_at asc").
		Find(&stale).Error; err != nil {
		log.Printf("[PURCHASE-SCHEDULER] Error fetching stale purchases: %v", err)
		return
	}

	if len(stale) == 0 {
		log.Println("[PURCHASE-SCHEDULER] No stale pending purchases")
		return
	}

	log.Printf("[PURCHASE-SCHEDULER] Found %d stale pending purchases", len(stale))
	for _, p := range stale {
		log.Printf("[PURCHASE-SCHEDULER] purchase=%d order=%s user=%d amount=%.2f age=%s",
			p.ID, p.OrderID, p.UserID, p.Amount, time.Since(p.CreatedAt).Round(time.Hour))
	}
}
