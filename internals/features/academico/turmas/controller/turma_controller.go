package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	alunoModel "melodia_backend/internals/features/academico/alunos/model"
	cursoModel "melodia_backend/internals/features/academico/cursos/model"
	professorModel "melodia_backend/internals/features/academico/professores/model"
	turmaDTO "melodia_backend/internals/features/academico/turmas/dto"
	turmaModel "melodia_backend/internals/features/academico/turmas/model"
	helper "melodia_backend/internals/helpers"
)

type TurmaController struct{ DB *gorm.DB }

func NewTurmaController(db *gorm.DB) *TurmaController {
	return &TurmaController{DB: db}
}

var validateTurma = validator.New()

// cursoDaEscola confirma que o curso pertence à escola do token.
func (h *TurmaController) cursoDaEscola(cursoID, escolaID uuid.UUID) error {
	var n int64
	if err := h.DB.Model(&cursoModel.CursoModel{}).
		Where("curso_id = ? AND curso_escola_id = ?", cursoID, escolaID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (h *TurmaController) professorDaEscola(professorID, escolaID uuid.UUID) error {
	var n int64
	if err := h.DB.Model(&professorModel.ProfessorModel{}).
		Where("professor_id = ? AND professor_escola_id = ?", professorID, escolaID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ===================== CREATE =====================
// POST /api/turmas
func (h *TurmaController) Create(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req turmaDTO.CreateTurmaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateTurma.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := h.cursoDaEscola(req.TurmaCursoID, escolaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Curso não pertence a esta escola")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar curso")
	}
	if req.TurmaProfessorID != nil {
		if err := h.professorDaEscola(*req.TurmaProfessorID, escolaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Professor não pertence a esta escola")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar professor")
		}
	}

	m, err := req.ToModel(escolaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar turma")
	}
	return helper.JsonCreated(c, "Turma criada", m)
}

// ===================== LIST =====================
// GET /api/turmas?q=&curso_id=&professor_id=&ativa=
func (h *TurmaController) List(c *fiber.Ctx) error {
	escolaID, err := helper.GetAnyEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)
	q := h.DB.Model(&turmaModel.TurmaModel{}).Where("turma_escola_id = ?", escolaID)

	if busca := strings.TrimSpace(c.Query("q")); busca != "" {
		q = q.Where("turma_nome ILIKE ?", "%"+busca+"%")
	}
	if cursoID := c.Query("curso_id"); cursoID != "" {
		if id, err := uuid.Parse(cursoID); err == nil {
			q = q.Where("turma_curso_id = ?", id)
		}
	}
	if profID := c.Query("professor_id"); profID != "" {
		if id, err := uuid.Parse(profID); err == nil {
			q = q.Where("turma_professor_id = ?", id)
		}
	}
	if ativa := c.Query("ativa"); ativa != "" {
		q = q.Where("turma_ativa = ?", ativa == "true" || ativa == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar turmas")
	}

	var lista []turmaModel.TurmaModel
	if err := q.Order("turma_nome asc").Offset(paging.Offset).Limit(paging.Limit).Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar turmas")
	}
	return helper.JsonList(c, "OK", lista, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== GET =====================
// GET /api/turmas/:id
func (h *TurmaController) GetByID(c *fiber.Ctx) error {
	escolaID, err := helper.GetAnyEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m turmaModel.TurmaModel
	if err := h.DB.First(&m, "turma_id = ? AND turma_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar turma")
	}
	return helper.JsonOK(c, "OK", m)
}

// ===================== UPDATE =====================
// PUT /api/turmas/:id
func (h *TurmaController) Update(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req turmaDTO.UpdateTurmaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateTurma.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m turmaModel.TurmaModel
	if err := h.DB.First(&m, "turma_id = ? AND turma_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar turma")
	}

	if req.TurmaProfessorID != nil {
		if err := h.professorDaEscola(*req.TurmaProfessorID, escolaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Professor não pertence a esta escola")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao validar professor")
		}
	}

	if err := req.ApplyToModel(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar turma")
	}
	return helper.JsonUpdated(c, "Turma atualizada", m)
}

// ===================== DELETE =====================
// DELETE /api/turmas/:id (soft)
func (h *TurmaController) Delete(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where("turma_id = ? AND turma_escola_id = ?", id, escolaID).
		Delete(&turmaModel.TurmaModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover turma")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
	}
	return helper.JsonDeleted(c, "Turma removida", fiber.Map{"turma_id": id})
}

// ===================== MATRÍCULAS =====================

// POST /api/turmas/:id/matriculas
// Regras: aluno e turma na mesma escola, sem matrícula viva duplicada,
// e respeitando a capacidade da turma (tudo dentro da mesma transação).
func (h *TurmaController) Matricular(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	turmaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req turmaDTO.MatricularRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateTurma.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var matricula turmaModel.MatriculaModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var turma turmaModel.TurmaModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&turma, "turma_id = ? AND turma_escola_id = ?", turmaID, escolaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Turma não encontrada")
			}
			return err
		}
		if !turma.TurmaAtiva {
			return fiber.NewError(fiber.StatusConflict, "Turma inativa não aceita matrículas")
		}

		var nAluno int64
		if err := tx.Model(&alunoModel.AlunoModel{}).
			Where("aluno_id = ? AND aluno_escola_id = ?", req.AlunoID, escolaID).
			Count(&nAluno).Error; err != nil {
			return err
		}
		if nAluno == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Aluno não pertence a esta escola")
		}

		var jaMatriculado int64
		if err := tx.Model(&turmaModel.MatriculaModel{}).
			Where("matricula_turma_id = ? AND matricula_aluno_id = ? AND matricula_status <> ?",
				turmaID, req.AlunoID, turmaModel.MatriculaCancelada).
			Count(&jaMatriculado).Error; err != nil {
			return err
		}
		if jaMatriculado > 0 {
			return fiber.NewError(fiber.StatusConflict, "Aluno já matriculado nesta turma")
		}

		var ocupadas int64
		if err := tx.Model(&turmaModel.MatriculaModel{}).
			Where("matricula_turma_id = ? AND matricula_status <> ?", turmaID, turmaModel.MatriculaCancelada).
			Count(&ocupadas).Error; err != nil {
			return err
		}
		if !turmaDTO.TemVaga(turma.TurmaCapacidade, ocupadas) {
			return fiber.NewError(fiber.StatusConflict, "Turma lotada")
		}

		matricula = turmaModel.MatriculaModel{
			MatriculaEscolaID: escolaID,
			MatriculaTurmaID:  turmaID,
			MatriculaAlunoID:  req.AlunoID,
			MatriculaStatus:   turmaModel.MatriculaAtiva,
			MatriculaData:     time.Now(),
		}
		return tx.Create(&matricula).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao matricular aluno")
	}
	return helper.JsonCreated(c, "Aluno matriculado", matricula)
}

// DELETE /api/turmas/:id/matriculas/:matricula_id
func (h *TurmaController) Desmatricular(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	turmaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	matriculaID, err := uuid.Parse(c.Params("matricula_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de matrícula inválido")
	}

	res := h.DB.Model(&turmaModel.MatriculaModel{}).
		Where("matricula_id = ? AND matricula_turma_id = ? AND matricula_escola_id = ? AND matricula_status <> ?",
			matriculaID, turmaID, escolaID, turmaModel.MatriculaCancelada).
		Update("matricula_status", turmaModel.MatriculaCancelada)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao cancelar matrícula")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Matrícula não encontrada")
	}
	return helper.JsonUpdated(c, "Matrícula cancelada", fiber.Map{"matricula_id": matriculaID})
}

// GET /api/turmas/:id/alunos
func (h *TurmaController) ListAlunosDaTurma(c *fiber.Ctx) error {
	escolaID, err := helper.GetAnyEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	turmaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var nTurma int64
	if err := h.DB.Model(&turmaModel.TurmaModel{}).
		Where("turma_id = ? AND turma_escola_id = ?", turmaID, escolaID).
		Count(&nTurma).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar turma")
	}
	if nTurma == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
	}

	type alunoMatriculado struct {
		MatriculaID     uuid.UUID                  `json:"matricula_id"`
		MatriculaStatus turmaModel.MatriculaStatus `json:"matricula_status"`
		MatriculaData   time.Time                  `json:"matricula_data"`
		AlunoID         uuid.UUID                  `json:"aluno_id"`
		AlunoNome       string                     `json:"aluno_nome"`
		AlunoFotoURL    *string                    `json:"aluno_foto_url,omitempty"`
	}

	var lista []alunoMatriculado
	if err := h.DB.Table("matriculas").
		Select(`matriculas.matricula_id, matriculas.matricula_status, matriculas.matricula_data,
			alunos.aluno_id, alunos.aluno_nome, alunos.aluno_foto_url`).
		Joins("JOIN alunos ON alunos.aluno_id = matriculas.matricula_aluno_id AND alunos.aluno_deleted_at IS NULL").
		Where("matriculas.matricula_turma_id = ? AND matriculas.matricula_status <> ? AND matriculas.matricula_deleted_at IS NULL",
			turmaID, turmaModel.MatriculaCancelada).
		Order("alunos.aluno_nome asc").
		Scan(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar alunos da turma")
	}
	return helper.JsonOK(c, "OK", lista)
}

// GET /api/alunos/:id/turmas
func (h *TurmaController) ListTurmasDoAluno(c *fiber.Ctx) error {
	escolaID, err := helper.GetAnyEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	alunoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var lista []turmaModel.TurmaModel
	if err := h.DB.
		Joins("JOIN matriculas ON matriculas.matricula_turma_id = turmas.turma_id AND matriculas.matricula_deleted_at IS NULL").
		Where(`matriculas.matricula_aluno_id = ? AND matriculas.matricula_status <> ?
			AND turmas.turma_escola_id = ?`, alunoID, turmaModel.MatriculaCancelada, escolaID).
		Order("turmas.turma_nome asc").
		Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar turmas do aluno")
	}
	return helper.JsonOK(c, "OK", lista)
}
