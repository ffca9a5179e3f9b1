package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	constants "melodia_backend/internals/constants"
	chatDTO "melodia_backend/internals/features/chat/conversas/dto"
	chatModel "melodia_backend/internals/features/chat/conversas/model"
	helper "melodia_backend/internals/helpers"
)

// ===================== CRIAR =====================
// POST /api/conversas/:id/enquetes (só professor/admin participante)
func (h *ConversaController) CriarEnquete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	conversaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	role, _ := c.Locals("role").(string)
	if role != constants.RoleAdmin && role != constants.RoleProfessor {
		return helper.JsonError(c, fiber.StatusForbidden, "Só professor ou admin cria enquete")
	}

	ok, err := h.ehParticipante(conversaID, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar participação")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não participa desta conversa")
	}

	var req chatDTO.CriarEnqueteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateChat.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var encerraEm *time.Time
	if req.EncerraEm != nil {
		t, err := time.Parse(time.RFC3339, *req.EncerraEm)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "encerra_em deve ser RFC3339")
		}
		if !t.After(time.Now()) {
			return helper.JsonError(c, fiber.StatusBadRequest, "encerra_em deve ser no futuro")
		}
		encerraEm = &t
	}

	var enquete chatModel.EnqueteModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		enquete = chatModel.EnqueteModel{
			EnqueteConversaID: conversaID,
			EnqueteCriadorID:  userID,
			EnquetePergunta:   req.Pergunta,
			EnqueteEncerraEm:  encerraEm,
		}
		if err := tx.Create(&enquete).Error; err != nil {
			return err
		}
		opcoes := make([]chatModel.EnqueteOpcaoModel, len(req.Opcoes))
		for i, texto := range req.Opcoes {
			opcoes[i] = chatModel.EnqueteOpcaoModel{
				OpcaoEnqueteID: enquete.EnqueteID,
				OpcaoTexto:     texto,
				OpcaoOrdem:     i,
			}
		}
		if err := tx.Create(&opcoes).Error; err != nil {
			return err
		}
		enquete.Opcoes = opcoes
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar enquete")
	}
	return helper.JsonCreated(c, "Enquete criada", enquete)
}

// ===================== VOTAR =====================
// POST /api/enquetes/:id/votar
// Revotar troca a opção. Depois do prazo, 409.
func (h *ConversaController) Votar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	enqueteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req chatDTO.VotarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateChat.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var enquete chatModel.EnqueteModel
	if err := h.DB.First(&enquete, "enquete_id = ?", enqueteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enquete não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar enquete")
	}

	ok, err := h.ehParticipante(enquete.EnqueteConversaID, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar participação")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não participa desta conversa")
	}

	if !chatDTO.EnqueteAberta(enquete.EnqueteEncerraEm, time.Now()) {
		return helper.JsonError(c, fiber.StatusConflict, "Enquete encerrada")
	}

	var nOpcao int64
	if err := h.DB.Model(&chatModel.EnqueteOpcaoModel{}).
		Where("opcao_id = ? AND opcao_enquete_id = ?", req.OpcaoID, enqueteID).
		Count(&nOpcao).Error; err != nil || nOpcao == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Opção não pertence a esta enquete")
	}

	voto := chatModel.EnqueteVotoModel{
		VotoEnqueteID: enqueteID,
		VotoUserID:    userID,
		VotoOpcaoID:   req.OpcaoID,
	}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "voto_enquete_id"}, {Name: "voto_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"voto_opcao_id", "voto_updated_at"}),
	}).Create(&voto).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao registrar voto")
	}
	return helper.JsonOK(c, "Voto registrado", fiber.Map{
		"enquete_id": enqueteID,
		"opcao_id":   req.OpcaoID,
	})
}

// ===================== RESULTADO =====================
// GET /api/enquetes/:id
func (h *ConversaController) GetEnquete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	enqueteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var enquete chatModel.EnqueteModel
	if err := h.DB.Preload("Opcoes", func(db *gorm.DB) *gorm.DB {
		return db.Order("opcao_ordem asc")
	}).First(&enquete, "enquete_id = ?", enqueteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enquete não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar enquete")
	}

	ok, err := h.ehParticipante(enquete.EnqueteConversaID, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar participação")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não participa desta conversa")
	}

	type contagem struct {
		VotoOpcaoID uuid.UUID
		Total       int64
	}
	var contagens []contagem
	if err := h.DB.Model(&chatModel.EnqueteVotoModel{}).
		Select("voto_opcao_id, COUNT(*) AS total").
		Where("voto_enquete_id = ?", enqueteID).
		Group("voto_opcao_id").
		Scan(&contagens).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao apurar votos")
	}

	votosPorOpcao := make(map[uuid.UUID]int64, len(contagens))
	for _, ct := range contagens {
		votosPorOpcao[ct.VotoOpcaoID] = ct.Total
	}

	opcoes := make([]chatDTO.TallyOpcao, len(enquete.Opcoes))
	for i, o := range enquete.Opcoes {
		opcoes[i] = chatDTO.TallyOpcao{OpcaoID: o.OpcaoID, OpcaoTexto: o.OpcaoTexto}
	}
	tally, total := chatDTO.ContarVotos(opcoes, votosPorOpcao)

	return helper.JsonOK(c, "OK", fiber.Map{
		"enquete": enquete,
		"aberta":  chatDTO.EnqueteAberta(enquete.EnqueteEncerraEm, time.Now()),
		"tally":   tally,
		"total":   total,
	})
}
