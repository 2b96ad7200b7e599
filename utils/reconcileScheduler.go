package utils

import (
	"coursehub/database"
	"coursehub/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeReconcileScheduler sets up the daily pending-purchase report
func InitializeReconcileScheduler() {
	log.Println("[RECONCILE-SCHEDULER] Initializing purchase reconciliation scheduler...")

	c := cron.New()

	// Run daily at 3 AM to report purchases stuck in created
	c.AddFunc("0 3 * * *", func() {
		log.Println("[RECONCILE-SCHEDULER] Running daily pending purchase check...")
		ReportStalePurchases()
	})

	c.Start()
	log.Println("[RECONCILE-SCHEDULER] Reconciliation scheduler started - runs daily at 3 AM")
}

// ReportStalePurchases logs purchases that have sat in created for over 24h.
// Report only: the purchase lifecycle has no expiry transition, so nothing
// is mutated here.
func ReportStalePurchases() {
	db := database.Database.Db
	cutoff := time.Now().Add(-24 * time.Hour)

	var count int64
	if err := db.
		Model(&models.Purchase{}).
		Where("status = ? AND is_deleted = false AND created_at < ?", models.PurchaseStatusCreated, cutoff).
		Count(&count).Error; err != nil {
		log.Printf("[RECONCILE-SCHEDULER] Error counting stale purchases: %v", err)
		return
	}

	if count > 0 {
		log.Printf("[RECONCILE-SCHEDULER] %d purchases older than 24h are still awaiting payment verification", count)
	} else {
		log.Println("[RECONCILE-SCHEDULER] No stale pending purchases found")
	}
}
