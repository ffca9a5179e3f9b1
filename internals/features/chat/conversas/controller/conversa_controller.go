package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	turmaModel "melodia_backend/internals/features/academico/turmas/model"
	chatDTO "melodia_backend/internals/features/chat/conversas/dto"
	chatModel "melodia_backend/internals/features/chat/conversas/model"
	profileModel "melodia_backend/internals/features/users/user/model"
	helper "melodia_backend/internals/helpers"
)

type ConversaController struct{ DB *gorm.DB }

func NewConversaController(db *gorm.DB) *ConversaController {
	return &ConversaController{DB: db}
}

var validateChat = validator.New()

// ehParticipante confirma que o usuário faz parte da conversa.
func (h *ConversaController) ehParticipante(conversaID, userID uuid.UUID) (bool, error) {
	var n int64
	err := h.DB.Model(&chatModel.ParticipanteModel{}).
		Where("participante_conversa_id = ? AND participante_user_id = ?", conversaID, userID).
		Count(&n).Error
	return n > 0, err
}

func (h *ConversaController) temProfileNaEscola(userID, escolaID uuid.UUID) (bool, error) {
	var n int64
	err := h.DB.Model(&profileModel.ProfileModel{}).
		Where("profile_user_id = ? AND profile_escola_id = ?", userID, escolaID).
		Count(&n).Error
	return n > 0, err
}

// ===================== CRIAR DIRETA =====================
// POST /api/conversas/direta
// Reaproveita a conversa existente entre os dois, se houver.
func (h *ConversaController) CriarDireta(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	escolaID, err := helper.GetAnyEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req chatDTO.CriarConversaDiretaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateChat.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.DestinatarioID == userID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Não é possível conversar consigo mesmo")
	}

	ok, err := h.temProfileNaEscola(req.DestinatarioID, escolaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar destinatário")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Destinatário não é membro desta escola")
	}

	// conversa direta já existente entre os dois nesta escola
	chave := chatModel.ChaveParDireta(escolaID, userID, req.DestinatarioID)
	var existente chatModel.ConversaModel
	err = h.DB.First(&existente, "conversa_par_chave = ?", chave).Error
	if err == nil {
		return helper.JsonOK(c, "Conversa existente", existente)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar conversa")
	}

	var conversa chatModel.ConversaModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		conversa = chatModel.ConversaModel{
			ConversaEscolaID: escolaID,
			ConversaTipo:     chatModel.ConversaDireta,
			ConversaParChave: &chave,
		}
		if err := tx.Create(&conversa).Error; err != nil {
			return err
		}
		participantes := []chatModel.ParticipanteModel{
			{ParticipanteConversaID: conversa.ConversaID, ParticipanteUserID: userID},
			{ParticipanteConversaID: conversa.ConversaID, ParticipanteUserID: req.DestinatarioID},
		}
		return tx.Create(&participantes).Error
	})
	if err != nil {
		// outra requisição criou a mesma conversa entre o lookup e o insert,
		// o índice único em conversa_par_chave barra a duplicata
		if errBusca := h.DB.First(&existente, "conversa_par_chave = ?", chave).Error; errBusca == nil {
			return helper.JsonOK(c, "Conversa existente", existente)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar conversa")
	}
	return helper.JsonCreated(c, "Conversa criada", conversa)
}

// ===================== CRIAR DA TURMA =====================
// POST /api/conversas/turma
// Canal único por turma. Entram o criador e os usuários dos alunos matriculados.
func (h *ConversaController) CriarDaTurma(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req chatDTO.CriarConversaTurmaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateChat.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var turma turmaModel.TurmaModel
	if err := h.DB.First(&turma, "turma_id = ? AND turma_escola_id = ?", req.TurmaID, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar turma")
	}

	var jaExiste int64
	if err := h.DB.Model(&chatModel.ConversaModel{}).
		Where("conversa_turma_id = ?", req.TurmaID).
		Count(&jaExiste).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao verificar conversa")
	}
	if jaExiste > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Esta turma já tem conversa")
	}

	titulo := turma.TurmaNome
	if req.Titulo != nil {
		titulo = *req.Titulo
	}

	var conversa chatModel.ConversaModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		turmaID := req.TurmaID
		conversa = chatModel.ConversaModel{
			ConversaEscolaID: escolaID,
			ConversaTurmaID:  &turmaID,
			ConversaTipo:     chatModel.ConversaDaTurma,
			ConversaTitulo:   &titulo,
		}
		if err := tx.Create(&conversa).Error; err != nil {
			return err
		}

		// usuários dos alunos matriculados que têm conta vinculada
		var userIDs []uuid.UUID
		if err := tx.Table("matriculas").
			Select("profiles.profile_user_id").
			Joins("JOIN alunos ON alunos.aluno_id = matriculas.matricula_aluno_id AND alunos.aluno_deleted_at IS NULL").
			Joins("JOIN profiles ON profiles.profile_id = alunos.aluno_profile_id AND profiles.profile_deleted_at IS NULL").
			Where("matriculas.matricula_turma_id = ? AND matriculas.matricula_status <> ? AND matriculas.matricula_deleted_at IS NULL",
				req.TurmaID, turmaModel.MatriculaCancelada).
			Pluck("profiles.profile_user_id", &userIDs).Error; err != nil {
			return err
		}

		membros := map[uuid.UUID]struct{}{userID: {}}
		participantes := []chatModel.ParticipanteModel{
			{ParticipanteConversaID: conversa.ConversaID, ParticipanteUserID: userID},
		}
		for _, id := range userIDs {
			if _, ok := membros[id]; ok {
				continue
			}
			membros[id] = struct{}{}
			participantes = append(participantes, chatModel.ParticipanteModel{
				ParticipanteConversaID: conversa.ConversaID,
				ParticipanteUserID:     id,
			})
		}
		return tx.Create(&participantes).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar conversa da turma")
	}
	return helper.JsonCreated(c, "Conversa criada", conversa)
}

// ===================== MINHAS =====================
// GET /api/conversas
func (h *ConversaController) ListMinhas(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 100)
	q := h.DB.Model(&chatModel.ConversaModel{}).
		Joins("JOIN participantes ON participantes.participante_conversa_id = conversas.conversa_id AND participantes.participante_deleted_at IS NULL").
		Where("participantes.participante_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar conversas")
	}

	var lista []chatModel.ConversaModel
	if err := q.Order("conversas.conversa_updated_at desc nulls last").
		Offset(paging.Offset).Limit(paging.Limit).Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar conversas")
	}
	return helper.JsonList(c, "OK", lista, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== GET =====================
// GET /api/conversas/:id
func (h *ConversaController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	ok, err := h.ehParticipante(id, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar participação")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não participa desta conversa")
	}

	var m chatModel.ConversaModel
	if err := h.DB.Preload("Participantes").First(&m, "conversa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Conversa não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar conversa")
	}
	return helper.JsonOK(c, "OK", m)
}
