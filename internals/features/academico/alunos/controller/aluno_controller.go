package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alunoDTO "melodia_backend/internals/features/academico/alunos/dto"
	alunoModel "melodia_backend/internals/features/academico/alunos/model"
	helper "melodia_backend/internals/helpers"
)

type AlunoController struct{ DB *gorm.DB }

func NewAlunoController(db *gorm.DB) *AlunoController {
	return &AlunoController{DB: db}
}

var validateAluno = validator.New()

// POST /api/alunos
func (h *AlunoController) Create(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req alunoDTO.CreateAlunoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAluno.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(escolaID)
	if m.AlunoEmail != nil {
		var n int64
		h.DB.Model(&alunoModel.AlunoModel{}).
			Where("aluno_escola_id = ? AND aluno_email = ?", escolaID, *m.AlunoEmail).
			Count(&n)
		if n > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Já existe aluno com este e-mail")
		}
	}

	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar aluno")
	}
	return helper.JsonCreated(c, "Aluno criado", m)
}

// GET /api/alunos?q=&ativo=
func (h *AlunoController) List(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)
	q := h.DB.Model(&alunoModel.AlunoModel{}).Where("aluno_escola_id = ?", escolaID)

	if busca := strings.TrimSpace(c.Query("q")); busca != "" {
		q = q.Where("aluno_nome ILIKE ? OR aluno_email ILIKE ?", "%"+busca+"%", "%"+busca+"%")
	}
	if ativo := c.Query("ativo"); ativo != "" {
		q = q.Where("aluno_ativo = ?", ativo == "true" || ativo == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar alunos")
	}

	var lista []alunoModel.AlunoModel
	if err := q.Order("aluno_nome asc").Offset(paging.Offset).Limit(paging.Limit).Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar alunos")
	}
	return helper.JsonList(c, "OK", lista, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/alunos/:id
func (h *AlunoController) GetByID(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m alunoModel.AlunoModel
	if err := h.DB.First(&m, "aluno_id = ? AND aluno_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar aluno")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/alunos/:id
func (h *AlunoController) Update(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req alunoDTO.UpdateAlunoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAluno.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m alunoModel.AlunoModel
	if err := h.DB.First(&m, "aluno_id = ? AND aluno_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar aluno")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar aluno")
	}
	return helper.JsonUpdated(c, "Aluno atualizado", m)
}

// POST /api/alunos/:id/foto (multipart)
func (h *AlunoController) UploadFoto(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromTokenPreferAdmin(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	fh, err := c.FormFile("foto")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo 'foto' ausente")
	}

	url, err := helper.UploadImagemSupabase("alunos", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	res := h.DB.Model(&alunoModel.AlunoModel{}).
		Where("aluno_id = ? AND aluno_escola_id = ?", id, escolaID).
		Update("aluno_foto_url", url)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar foto")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}
	return helper.JsonUpdated(c, "Foto atualizada", fiber.Map{"aluno_foto_url": url})
}

// DELETE /api/alunos/:id (soft)
func (h *AlunoController) Delete(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where("aluno_id = ? AND aluno_escola_id = ?", id, escolaID).
		Delete(&alunoModel.AlunoModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover aluno")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}
	return helper.JsonDeleted(c, "Aluno removido", fiber.Map{"aluno_id": id})
}
