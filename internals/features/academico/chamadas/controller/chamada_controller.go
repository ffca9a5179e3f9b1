package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	chamadaDTO "melodia_backend/internals/features/academico/chamadas/dto"
	chamadaModel "melodia_backend/internals/features/academico/chamadas/model"
	turmaModel "melodia_backend/internals/features/academico/turmas/model"
	helper "melodia_backend/internals/helpers"
)

type ChamadaController struct{ DB *gorm.DB }

func NewChamadaController(db *gorm.DB) *ChamadaController {
	return &ChamadaController{DB: db}
}

var validateChamada = validator.New()

func (h *ChamadaController) turmaDaEscola(turmaID, escolaID uuid.UUID) error {
	var n int64
	if err := h.DB.Model(&turmaModel.TurmaModel{}).
		Where("turma_id = ? AND turma_escola_id = ?", turmaID, escolaID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// alunosMatriculados devolve os IDs com matrícula viva na turma.
func (h *ChamadaController) alunosMatriculados(tx *gorm.DB, turmaID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	if err := tx.Model(&turmaModel.MatriculaModel{}).
		Where("matricula_turma_id = ? AND matricula_status <> ?", turmaID, turmaModel.MatriculaCancelada).
		Pluck("matricula_aluno_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// ===================== ABRIR =====================
// POST /api/chamadas
func (h *ChamadaController) Abrir(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req chamadaDTO.AbrirChamadaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateChamada.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	data, err := helper.ParseDataISO(req.ChamadaData)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data deve ser YYYY-MM-DD")
	}
	if err := helper.ValidarNaoFutura(data); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.turmaDaEscola(req.ChamadaTurmaID, escolaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar turma")
	}

	var chamada chamadaModel.ChamadaModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var existente int64
		if err := tx.Model(&chamadaModel.ChamadaModel{}).
			Where("chamada_turma_id = ? AND chamada_data = ?", req.ChamadaTurmaID, data).
			Count(&existente).Error; err != nil {
			return err
		}
		if existente > 0 {
			return fiber.NewError(fiber.StatusConflict, "Já existe chamada para esta turma nesta data")
		}

		chamada = chamadaModel.ChamadaModel{
			ChamadaEscolaID:   escolaID,
			ChamadaTurmaID:    req.ChamadaTurmaID,
			ChamadaData:       data,
			ChamadaObservacao: req.ChamadaObservacao,
		}
		if err := tx.Create(&chamada).Error; err != nil {
			return err
		}

		if req.PreencherAlunos {
			matriculados, err := h.alunosMatriculados(tx, req.ChamadaTurmaID)
			if err != nil {
				return err
			}
			presencas := make([]chamadaModel.PresencaModel, 0, len(matriculados))
			for alunoID := range matriculados {
				presencas = append(presencas, chamadaModel.PresencaModel{
					PresencaChamadaID: chamada.ChamadaID,
					PresencaAlunoID:   alunoID,
					PresencaPresente:  false,
				})
			}
			if len(presencas) > 0 {
				if err := tx.Create(&presencas).Error; err != nil {
					return err
				}
				chamada.Presencas = presencas
			}
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao abrir chamada")
	}
	return helper.JsonCreated(c, "Chamada aberta", chamada)
}

// ===================== PRESENÇAS =====================
// PUT /api/chamadas/:id/presencas (upsert em lote)
func (h *ChamadaController) RegistrarPresencas(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	chamadaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req chamadaDTO.RegistrarPresencasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateChamada.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var chamada chamadaModel.ChamadaModel
	if err := h.DB.First(&chamada, "chamada_id = ? AND chamada_escola_id = ?", chamadaID, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Chamada não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar chamada")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		matriculados, err := h.alunosMatriculados(tx, chamada.ChamadaTurmaID)
		if err != nil {
			return err
		}

		registros := make([]chamadaModel.PresencaModel, 0, len(req.Presencas))
		for _, p := range req.Presencas {
			if _, ok := matriculados[p.AlunoID]; !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Aluno sem matrícula ativa nesta turma")
			}
			registros = append(registros, chamadaModel.PresencaModel{
				PresencaChamadaID:     chamadaID,
				PresencaAlunoID:       p.AlunoID,
				PresencaPresente:      p.Presente,
				PresencaJustificativa: p.Justificativa,
			})
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "presenca_chamada_id"}, {Name: "presenca_aluno_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"presenca_presente", "presenca_justificativa", "presenca_updated_at",
			}),
		}).Create(&registros).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao registrar presenças")
	}
	return helper.JsonUpdated(c, "Presenças registradas", fiber.Map{
		"chamada_id": chamadaID,
		"total":      len(req.Presencas),
	})
}

// ===================== GET =====================
// GET /api/chamadas/:id
func (h *ChamadaController) GetByID(c *fiber.Ctx) error {
	escolaID, err := helper.GetAnyEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m chamadaModel.ChamadaModel
	if err := h.DB.Preload("Presencas").
		First(&m, "chamada_id = ? AND chamada_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Chamada não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar chamada")
	}
	return helper.JsonOK(c, "OK", m)
}

// ===================== LIST =====================
// GET /api/chamadas?turma_id=&de=&ate=
func (h *ChamadaController) List(c *fiber.Ctx) error {
	escolaID, err := helper.GetAnyEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)
	q := h.DB.Model(&chamadaModel.ChamadaModel{}).Where("chamada_escola_id = ?", escolaID)

	if turmaID := c.Query("turma_id"); turmaID != "" {
		if id, err := uuid.Parse(turmaID); err == nil {
			q = q.Where("chamada_turma_id = ?", id)
		}
	}
	if de := c.Query("de"); de != "" {
		if t, err := helper.ParseDataISO(de); err == nil {
			q = q.Where("chamada_data >= ?", t)
		}
	}
	if ate := c.Query("ate"); ate != "" {
		if t, err := helper.ParseDataISO(ate); err == nil {
			q = q.Where("chamada_data <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar chamadas")
	}

	var lista []chamadaModel.ChamadaModel
	if err := q.Order("chamada_data desc").Offset(paging.Offset).Limit(paging.Limit).Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar chamadas")
	}
	return helper.JsonList(c, "OK", lista, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== DELETE =====================
// DELETE /api/chamadas/:id (soft, leva as presenças junto)
func (h *ChamadaController) Delete(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("chamada_id = ? AND chamada_escola_id = ?", id, escolaID).
			Delete(&chamadaModel.ChamadaModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Chamada não encontrada")
		}
		return tx.Where("presenca_chamada_id = ?", id).
			Delete(&chamadaModel.PresencaModel{}).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover chamada")
	}
	return helper.JsonDeleted(c, "Chamada removida", fiber.Map{"chamada_id": id})
}

// ===================== FREQUÊNCIA =====================
// GET /api/turmas/:id/frequencia?de=&ate=
// Agrega no banco: total de chamadas no período x presenças por aluno.
func (h *ChamadaController) FrequenciaDaTurma(c *fiber.Ctx) error {
	escolaID, err := helper.GetAnyEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	turmaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.turmaDaEscola(turmaID, escolaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar turma")
	}

	de, ate := periodoOuMesAtual(c)

	var linhas []chamadaDTO.FrequenciaAluno
	if err := h.DB.Table("presencas").
		Select(`presencas.presenca_aluno_id AS aluno_id,
			alunos.aluno_nome,
			COUNT(*) AS total_chamadas,
			COUNT(*) FILTER (WHERE presencas.presenca_presente) AS total_presencas`).
		Joins("JOIN chamadas ON chamadas.chamada_id = presencas.presenca_chamada_id AND chamadas.chamada_deleted_at IS NULL").
		Joins("JOIN alunos ON alunos.aluno_id = presencas.presenca_aluno_id AND alunos.aluno_deleted_at IS NULL").
		Where(`chamadas.chamada_turma_id = ? AND chamadas.chamada_data >= ? AND chamadas.chamada_data < ?
			AND presencas.presenca_deleted_at IS NULL`, turmaID, de, ate).
		Group("presencas.presenca_aluno_id, alunos.aluno_nome").
		Order("alunos.aluno_nome asc").
		Scan(&linhas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao calcular frequência")
	}

	for i := range linhas {
		linhas[i].Percentual = chamadaDTO.CalcularPercentual(linhas[i].TotalPresencas, linhas[i].TotalChamadas)
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"turma_id": turmaID,
		"de":       de.Format("2006-01-02"),
		"ate":      ate.AddDate(0, 0, -1).Format("2006-01-02"),
		"alunos":   linhas,
	})
}

// periodoOuMesAtual lê ?de=&ate= ou assume o mês corrente.
// O fim devolvido é EXCLUSIVO (primeiro instante fora do período), para uso
// com `>= de AND < ate`; um ?ate= informado pelo cliente é inclusivo e vira
// o dia seguinte.
func periodoOuMesAtual(c *fiber.Ctx) (time.Time, time.Time) {
	agora := time.Now()
	de := helper.InicioDoMes(agora)
	ate := helper.FimDoMes(agora)
	if s := c.Query("de"); s != "" {
		if t, err := helper.ParseDataISO(s); err == nil {
			de = t
		}
	}
	if s := c.Query("ate"); s != "" {
		if t, err := helper.ParseDataISO(s); err == nil {
			ate = t.AddDate(0, 0, 1)
		}
	}
	return de, ate
}
