package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"melodia_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler apaga em lote tokens revogados já vencidos.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// TTL extra além do exp (default: 7 dias)
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expirados []model.TokenBlacklistModel
			if err := db.
				Where("token_blacklist_expira_em < ? AND token_blacklist_deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expirados).Error; err != nil {
				log.Printf("[CLEANUP ERROR] falha ao buscar tokens vencidos: %v", err)
			} else if len(expirados) > 0 {
				if err := db.Delete(&expirados).Error; err != nil {
					log.Printf("[CLEANUP ERROR] falha ao apagar tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] %d tokens vencidos removidos", len(expirados))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
