package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"miescuela_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler removes blacklisted and refresh tokens that
// expired longer than TOKEN_BLACKLIST_TTL_DAYS ago. Runs daily at 03:00.
func StartBlacklistCleanupScheduler(db *gorm.DB) *cron.Cron {
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			ttlDays = parsed
		}
	}

	c := cron.New()
	_, err := c.AddFunc("0 3 * * *", func() {
		cleanupExpiredTokens(db, ttlDays)
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] cron schedule: %v", err)
		return c
	}
	c.Start()
	log.Println("[INFO] Token blacklist cleanup scheduled (daily 03:00)")
	return c
}

func cleanupExpiredTokens(db *gorm.DB, ttlDays int) {
	log.Println("[CLEANUP] Purging expired token_blacklist entries...")

	deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	res := db.Unscoped().
		Where("expired_at < ?", deleteBefore).
		Delete(&model.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[CLEANUP ERROR] blacklist purge: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d blacklist entries removed", res.RowsAffected)
	}

	res = db.Unscoped().
		Where("expired_at < ?", deleteBefore).
		Delete(&model.RefreshToken{})
	if res.Error != nil {
		log.Printf("[CLEANUP ERROR] refresh purge: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d stale refresh tokens removed", res.RowsAffected)
	}
}
