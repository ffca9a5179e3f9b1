package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cursoDTO "melodia_backend/internals/features/academico/cursos/dto"
	cursoModel "melodia_backend/internals/features/academico/cursos/model"
	helper "melodia_backend/internals/helpers"
)

type CursoController struct{ DB *gorm.DB }

func NewCursoController(db *gorm.DB) *CursoController {
	return &CursoController{DB: db}
}

var validateCurso = validator.New()

// ===================== CREATE =====================
// POST /api/cursos
func (h *CursoController) Create(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req cursoDTO.CreateCursoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateCurso.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(escolaID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar curso")
	}
	return helper.JsonCreated(c, "Curso criado", m)
}

// ===================== LIST =====================
// GET /api/cursos?q=&ativo=
func (h *CursoController) List(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)
	q := h.DB.Model(&cursoModel.CursoModel{}).Where("curso_escola_id = ?", escolaID)

	if busca := strings.TrimSpace(c.Query("q")); busca != "" {
		q = q.Where("curso_nome ILIKE ?", "%"+busca+"%")
	}
	if ativo := c.Query("ativo"); ativo != "" {
		q = q.Where("curso_ativo = ?", ativo == "true" || ativo == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar cursos")
	}

	var lista []cursoModel.CursoModel
	if err := q.Order("curso_nome asc").Offset(paging.Offset).Limit(paging.Limit).Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar cursos")
	}
	return helper.JsonList(c, "OK", lista, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== GET =====================
// GET /api/cursos/:id
func (h *CursoController) GetByID(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m cursoModel.CursoModel
	if err := h.DB.First(&m, "curso_id = ? AND curso_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Curso não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar curso")
	}
	return helper.JsonOK(c, "OK", m)
}

// ===================== UPDATE =====================
// PUT /api/cursos/:id
func (h *CursoController) Update(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req cursoDTO.UpdateCursoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateCurso.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m cursoModel.CursoModel
	if err := h.DB.First(&m, "curso_id = ? AND curso_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Curso não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar curso")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar curso")
	}
	return helper.JsonUpdated(c, "Curso atualizado", m)
}

// ===================== DELETE =====================
// DELETE /api/cursos/:id (soft)
func (h *CursoController) Delete(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where("curso_id = ? AND curso_escola_id = ?", id, escolaID).
		Delete(&cursoModel.CursoModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover curso")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Curso não encontrado")
	}
	return helper.JsonDeleted(c, "Curso removido", fiber.Map{"curso_id": id})
}
