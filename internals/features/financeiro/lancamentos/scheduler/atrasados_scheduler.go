package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"melodia_backend/internals/features/financeiro/lancamentos/controller"
)

// StartAtrasadosScheduler roda a varredura diária que marca como atrasado
// todo lançamento pendente com vencimento no passado.
func StartAtrasadosScheduler(db *gorm.DB) {
	go func() {
		for {
			marcados, err := controller.MarcarAtrasadosVencidos(db)
			if err != nil {
				log.Printf("[CLEANUP ERROR] varredura de atrasados falhou: %v", err)
			} else if marcados > 0 {
				log.Printf("[CLEANUP] %d lançamentos marcados como atrasados", marcados)
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}
