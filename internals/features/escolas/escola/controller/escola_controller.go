package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"melodia_backend/internals/constants"
	escolaDTO "melodia_backend/internals/features/escolas/escola/dto"
	escolaModel "melodia_backend/internals/features/escolas/escola/model"
	userModel "melodia_backend/internals/features/users/user/model"
	helper "melodia_backend/internals/helpers"
)

type EscolaController struct{ DB *gorm.DB }

func NewEscolaController(db *gorm.DB) *EscolaController {
	return &EscolaController{DB: db}
}

var validateEscola = validator.New()

// ===================== CREATE-ACCESS =====================
// POST /owner/escolas/create-access
// Provisionamento privilegiado: escola + user admin + profile em uma transação.
func (h *EscolaController) CreateAccess(c *fiber.Ctx) error {
	var req escolaDTO.CreateAccessRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateEscola.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlug(h.DB, req.EscolaNome, helper.SlugOptions{
		Table:            "escolas",
		SlugColumn:       "escola_slug",
		SoftDeleteColumn: "escola_deleted_at",
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar slug")
	}

	senhaHash, err := bcrypt.GenerateFromPassword([]byte(req.AdminSenha), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	escola := req.ToEscolaModel(slug)
	email := strings.ToLower(strings.TrimSpace(req.AdminEmail))

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(escola).Error; err != nil {
			return err
		}

		// reaproveita conta existente com o mesmo e-mail, senão cria
		var user userModel.UserModel
		switch err := tx.First(&user, "user_email = ?", email).Error; {
		case err == nil:
			// ok
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = userModel.UserModel{
				UserName:  strings.TrimSpace(req.AdminNome),
				UserEmail: email,
				UserSenha: string(senhaHash),
				UserAtivo: true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		default:
			return err
		}

		profile := userModel.ProfileModel{
			ProfileUserID:       user.UserID,
			ProfileEscolaID:     escola.EscolaID,
			ProfileRole:         constants.RoleAdmin,
			ProfileNomeCompleto: strings.TrimSpace(req.AdminNome),
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao provisionar escola")
	}

	return helper.JsonCreated(c, "Escola provisionada", escolaDTO.FromModel(escola))
}

// ===================== GET =====================
// GET /api/escolas/:id  |  GET /api/escolas/by-slug/:slug
func (h *EscolaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if !h.podeVer(c, id) {
		return helper.JsonError(c, fiber.StatusForbidden, "Sem acesso a esta escola")
	}

	var m escolaModel.EscolaModel
	if err := h.DB.First(&m, "escola_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Escola não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar escola")
	}
	return helper.JsonOK(c, "OK", escolaDTO.FromModel(&m))
}

func (h *EscolaController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	var m escolaModel.EscolaModel
	if err := h.DB.First(&m, "escola_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Escola não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar escola")
	}
	if !h.podeVer(c, m.EscolaID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Sem acesso a esta escola")
	}
	return helper.JsonOK(c, "OK", escolaDTO.FromModel(&m))
}

// ===================== LIST (owner) =====================
// GET /owner/escolas
func (h *EscolaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&escolaModel.EscolaModel{})
	if busca := strings.TrimSpace(c.Query("q")); busca != "" {
		q = q.Where("escola_nome ILIKE ?", "%"+busca+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar escolas")
	}

	var lista []escolaModel.EscolaModel
	if err := q.Order("escola_nome asc").Offset(paging.Offset).Limit(paging.Limit).Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar escolas")
	}

	out := make([]escolaDTO.EscolaResponse, 0, len(lista))
	for i := range lista {
		out = append(out, escolaDTO.FromModel(&lista[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== UPDATE =====================
// PUT /api/escolas/:id (admin da escola)
func (h *EscolaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if !helper.IsAdminOfEscola(c, id) {
		if isOwner, ok := c.Locals("is_owner").(bool); !ok || !isOwner {
			return helper.JsonError(c, fiber.StatusForbidden, "Apenas o admin da escola")
		}
	}

	var req escolaDTO.UpdateEscolaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateEscola.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m escolaModel.EscolaModel
	if err := h.DB.First(&m, "escola_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Escola não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar escola")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar escola")
	}
	return helper.JsonUpdated(c, "Escola atualizada", escolaDTO.FromModel(&m))
}

// ===================== LOGO =====================
// POST /api/escolas/:id/logo (multipart)
func (h *EscolaController) UploadLogo(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if !helper.IsAdminOfEscola(c, id) {
		return helper.JsonError(c, fiber.StatusForbidden, "Apenas o admin da escola")
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo 'logo' ausente")
	}

	url, err := helper.UploadImagemSupabase("logos", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	if err := h.DB.Model(&escolaModel.EscolaModel{}).
		Where("escola_id = ?", id).
		Update("escola_logo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar logo")
	}
	return helper.JsonUpdated(c, "Logo atualizada", fiber.Map{"escola_logo_url": url})
}

// podeVer: qualquer membership na escola (ou owner) pode ler.
func (h *EscolaController) podeVer(c *fiber.Ctx, escolaID uuid.UUID) bool {
	if isOwner, ok := c.Locals("is_owner").(bool); ok && isOwner {
		return true
	}
	if id, err := helper.GetAnyEscolaIDFromToken(c); err == nil && id == escolaID {
		return true
	}
	if helper.IsAdminOfEscola(c, escolaID) || helper.IsProfessorOfEscola(c, escolaID) {
		return true
	}
	return false
}
