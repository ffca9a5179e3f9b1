package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lancModel "melodia_backend/internals/features/financeiro/lancamentos/model"
	helper "melodia_backend/internals/helpers"
)

// Map status Midtrans → status interno.
func mapStatusMidtrans(txStatus, fraudStatus string) lancModel.LancamentoStatus {
	switch txStatus {
	case "capture", "settlement", "success":
		if txStatus == "capture" && fraudStatus == "challenge" {
			return lancModel.LancamentoPendente
		}
		return lancModel.LancamentoPago
	case "pending":
		return lancModel.LancamentoPendente
	case "expire", "expired", "cancel", "canceled", "deny", "failure", "failed":
		return lancModel.LancamentoCancelado
	default:
		return ""
	}
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func parseHoraMidtrans(body map[string]interface{}) time.Time {
	const layout = "2006-01-02 15:04:05"
	if s := getString(body, "settlement_time"); s != "" {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	if s := getString(body, "transaction_time"); s != "" {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

// POST /api/financeiro/notificacao-pagamento (público, fora do AuthMiddleware)
func (h *LancamentoController) NotificacaoPagamento(c *fiber.Ctx) error {
	// Parsing robusto: JSON, com fallback para form-urlencoded
	// (o Midtrans envia ambos, inclusive no botão de teste).
	var body map[string]interface{}

	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	if strings.Contains(ct, "application/json") && len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			log.Println("[WARN] webhook: JSON inválido:", err)
		}
	}
	if len(body) == 0 {
		form := map[string]interface{}{}
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			form[string(k)] = string(v)
		})
		if len(form) > 0 {
			body = form
		}
	}
	// responde 200 mesmo vazio para o Midtrans não ficar em retry
	if len(body) == 0 {
		log.Printf("[ERROR] webhook com corpo vazio. CT=%q\n", ct)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "empty body"})
	}

	orderID := getString(body, "order_id")
	txStatus := strings.ToLower(getString(body, "transaction_status"))
	fraud := strings.ToLower(getString(body, "fraud_status"))
	payType := getString(body, "payment_type")
	log.Printf("[REQ] webhook midtrans order_id=%s status=%s fraud=%s tipo=%s", orderID, txStatus, fraud, payType)

	if err := h.atualizarPorNotificacao(body); err != nil {
		log.Println("[ERROR] webhook: falha ao processar:", err)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "processed with warning",
			"error":   err.Error(),
		})
	}

	return helper.JsonOK(c, "Notificação processada", fiber.Map{
		"order_id":        orderID,
		"midtrans_status": txStatus,
		"status_interno":  mapStatusMidtrans(txStatus, fraud),
	})
}

func (h *LancamentoController) atualizarPorNotificacao(body map[string]interface{}) error {
	orderID := getString(body, "order_id")
	if orderID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "order_id ausente")
	}

	novoStatus := mapStatusMidtrans(
		strings.ToLower(getString(body, "transaction_status")),
		strings.ToLower(getString(body, "fraud_status")),
	)
	if novoStatus == "" {
		// status que não conhecemos não derruba o webhook
		log.Printf("[WARN] webhook: status desconhecido para order_id=%s\n", orderID)
		return nil
	}

	return h.DB.Transaction(func(tx *gorm.DB) error {
		var m lancModel.LancamentoModel
		if err := tx.First(&m, "lancamento_order_id = ?", orderID).Error; err != nil {
			return err
		}
		// pago é terminal, notificação atrasada não regride
		if m.LancamentoStatus == lancModel.LancamentoPago {
			return nil
		}

		m.LancamentoStatus = novoStatus
		if novoStatus == lancModel.LancamentoPago {
			pagoEm := parseHoraMidtrans(body)
			forma := "online"
			if pt := getString(body, "payment_type"); pt != "" {
				forma = pt
			}
			m.LancamentoPagoEm = &pagoEm
			m.LancamentoFormaPagamento = &forma
		}
		return tx.Save(&m).Error
	})
}
