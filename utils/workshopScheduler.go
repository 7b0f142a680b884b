package utils

import (
	"log"
	"shikhon/database"
	"shikhon/models"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeWorkshopScheduler sets up the workshop status sweep
func InitializeWorkshopScheduler() {
	log.Println("[WORKSHOP-SCHEDULER] Initializing workshop scheduler...")

	c := cron.New()

	// Run hourly to close out workshops that have ended
	c.AddFunc("0 * * * *", func() {
		log.Println("[WORKSHOP-SCHEDULER] Running hourly workshop sweep...")
		CompleteEndedWorkshops()
	})

	c.Start()
	log.Println("[WORKSHOP-SCHEDULER] Workshop scheduler started - runs hourly")
}

// CompleteEndedWorkshops marks published workshops past their end time as COMPLETED
func CompleteEndedWorkshops() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Workshop{}).
		Where("status = ? AND end_time < ? AND is_deleted = false", models.WorkshopStatusPublished, now).
		Update("status", models.WorkshopStatusCompleted)

	if result.Error != nil {
		log.Printf("[WORKSHOP-SCHEDULER] Error completing workshops: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[WORKSHOP-SCHEDULER] Marked %d workshops as completed", result.RowsAffected)
	}
}
