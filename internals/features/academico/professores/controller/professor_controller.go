package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	profDTO "melodia_backend/internals/features/academico/professores/dto"
	profModel "melodia_backend/internals/features/academico/professores/model"
	helper "melodia_backend/internals/helpers"
)

type ProfessorController struct{ DB *gorm.DB }

func NewProfessorController(db *gorm.DB) *ProfessorController {
	return &ProfessorController{DB: db}
}

var validateProfessor = validator.New()

// POST /api/professores
func (h *ProfessorController) Create(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req profDTO.CreateProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateProfessor.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(escolaID)
	if m.ProfessorEmail != nil {
		var n int64
		h.DB.Model(&profModel.ProfessorModel{}).
			Where("professor_escola_id = ? AND professor_email = ?", escolaID, *m.ProfessorEmail).
			Count(&n)
		if n > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Já existe professor com este e-mail")
		}
	}

	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar professor")
	}
	return helper.JsonCreated(c, "Professor criado", m)
}

// GET /api/professores?q=&ativo=
func (h *ProfessorController) List(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)
	q := h.DB.Model(&profModel.ProfessorModel{}).Where("professor_escola_id = ?", escolaID)

	if busca := strings.TrimSpace(c.Query("q")); busca != "" {
		q = q.Where("professor_nome ILIKE ? OR professor_email ILIKE ?", "%"+busca+"%", "%"+busca+"%")
	}
	if ativo := c.Query("ativo"); ativo != "" {
		q = q.Where("professor_ativo = ?", ativo == "true" || ativo == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar professores")
	}

	var lista []profModel.ProfessorModel
	if err := q.Order("professor_nome asc").Offset(paging.Offset).Limit(paging.Limit).Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar professores")
	}
	return helper.JsonList(c, "OK", lista, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/professores/:id
func (h *ProfessorController) GetByID(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m profModel.ProfessorModel
	if err := h.DB.First(&m, "professor_id = ? AND professor_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Professor não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar professor")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/professores/:id
func (h *ProfessorController) Update(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req profDTO.UpdateProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateProfessor.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m profModel.ProfessorModel
	if err := h.DB.First(&m, "professor_id = ? AND professor_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Professor não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar professor")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar professor")
	}
	return helper.JsonUpdated(c, "Professor atualizado", m)
}

// DELETE /api/professores/:id (soft)
func (h *ProfessorController) Delete(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where("professor_id = ? AND professor_escola_id = ?", id, escolaID).
		Delete(&profModel.ProfessorModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover professor")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Professor não encontrado")
	}
	return helper.JsonDeleted(c, "Professor removido", fiber.Map{"professor_id": id})
}
