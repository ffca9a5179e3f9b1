package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "melodia_backend/internals/features/users/user/model"
	helper "melodia_backend/internals/helpers"
)

type ProfileController struct{ DB *gorm.DB }

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

var validateProfile = validator.New()

type UpdateProfileRequest struct {
	ProfileNomeCompleto *string `json:"profile_nome_completo" validate:"omitempty,min=3,max=160"`
	ProfileTelefone     *string `json:"profile_telefone" validate:"omitempty,max=30"`
}

// PUT /api/profile — atualiza o profile do próprio user na escola ativa.
func (h *ProfileController) UpdateMeu(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão inválida")
	}
	escolaID, err := helper.GetAnyEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateProfile.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var profile userModel.ProfileModel
	if err := h.DB.First(&profile, "profile_user_id = ? AND profile_escola_id = ?", userID, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar profile")
	}

	if req.ProfileNomeCompleto != nil {
		profile.ProfileNomeCompleto = strings.TrimSpace(*req.ProfileNomeCompleto)
	}
	if req.ProfileTelefone != nil {
		tel := strings.TrimSpace(*req.ProfileTelefone)
		profile.ProfileTelefone = &tel
	}

	if err := h.DB.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar profile")
	}
	return helper.JsonUpdated(c, "Profile atualizado", profile)
}

// POST /api/profile/avatar — multipart; resize + webp + upload no bucket.
func (h *ProfileController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão inválida")
	}
	escolaID, err := helper.GetAnyEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo 'avatar' ausente")
	}

	url, err := helper.UploadImagemSupabase("avatars", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	if err := h.DB.Model(&userModel.ProfileModel{}).
		Where("profile_user_id = ? AND profile_escola_id = ?", userID, escolaID).
		Update("profile_foto_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar avatar")
	}
	return helper.JsonUpdated(c, "Avatar atualizado", fiber.Map{"profile_foto_url": url})
}

// GET /api/profiles — admin lista os membros da escola.
func (h *ProfileController) ListDaEscola(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&userModel.ProfileModel{}).Where("profile_escola_id = ?", escolaID)
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("profile_role = ?", role)
	}
	if busca := strings.TrimSpace(c.Query("q")); busca != "" {
		q = q.Where("profile_nome_completo ILIKE ?", "%"+busca+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar profiles")
	}

	var lista []userModel.ProfileModel
	if err := q.Order("profile_nome_completo asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar profiles")
	}
	return helper.JsonList(c, "OK", lista, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
