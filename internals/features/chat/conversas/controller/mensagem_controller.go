package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	constants "melodia_backend/internals/constants"
	chatDTO "melodia_backend/internals/features/chat/conversas/dto"
	chatModel "melodia_backend/internals/features/chat/conversas/model"
	helper "melodia_backend/internals/helpers"
)

// ===================== ENVIAR =====================
// POST /api/conversas/:id/mensagens
func (h *ConversaController) EnviarMensagem(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	conversaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	ok, err := h.ehParticipante(conversaID, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar participação")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não participa desta conversa")
	}

	var req chatDTO.EnviarMensagemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateChat.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := chatModel.MensagemModel{
		MensagemConversaID: conversaID,
		MensagemSenderID:   userID,
		MensagemTexto:      req.Texto,
		MensagemAnexos:     req.Anexos,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao enviar mensagem")
	}
	return helper.JsonCreated(c, "Mensagem enviada", m)
}

// ===================== LISTAR =====================
// GET /api/conversas/:id/mensagens (mais recentes primeiro)
func (h *ConversaController) ListMensagens(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	conversaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	ok, err := h.ehParticipante(conversaID, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar participação")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não participa desta conversa")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	q := h.DB.Model(&chatModel.MensagemModel{}).Where("mensagem_conversa_id = ?", conversaID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar mensagens")
	}

	var lista []chatModel.MensagemModel
	if err := q.Order("mensagem_created_at desc").
		Offset(paging.Offset).Limit(paging.Limit).Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar mensagens")
	}
	return helper.JsonList(c, "OK", lista, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== APAGAR =====================
// DELETE /api/conversas/:id/mensagens/:mensagem_id
// Autor apaga a própria mensagem; admin apaga qualquer uma.
func (h *ConversaController) ApagarMensagem(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	conversaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	mensagemID, err := uuid.Parse(c.Params("mensagem_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de mensagem inválido")
	}

	var m chatModel.MensagemModel
	if err := h.DB.First(&m, "mensagem_id = ? AND mensagem_conversa_id = ?", mensagemID, conversaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mensagem não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar mensagem")
	}

	role, _ := c.Locals("role").(string)
	if m.MensagemSenderID != userID && role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Sem permissão para apagar esta mensagem")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao apagar mensagem")
	}
	return helper.JsonDeleted(c, "Mensagem apagada", fiber.Map{"mensagem_id": mensagemID})
}
