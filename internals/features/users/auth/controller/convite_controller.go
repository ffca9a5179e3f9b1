package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"melodia_backend/internals/configs"
	authDTO "melodia_backend/internals/features/users/auth/dto"
	authModel "melodia_backend/internals/features/users/auth/model"
	userModel "melodia_backend/internals/features/users/user/model"
	helper "melodia_backend/internals/helpers"
)

type ConviteController struct{ DB *gorm.DB }

func NewConviteController(db *gorm.DB) *ConviteController {
	return &ConviteController{DB: db}
}

const conviteTTL = 7 * 24 * time.Hour

// ===================== INVITE-USER =====================
// POST /api/convites — admin pré-provisiona user+profile e gera o token.
func (h *ConviteController) Invite(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req authDTO.InviteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	tokenClaro, err := helper.GenerateRandomToken(32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar token")
	}
	tokenCifrado, err := helper.EncryptAESGCM(helper.DeriveKey(configs.ConviteSecret), []byte(tokenClaro))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cifrar token")
	}

	// senha temporária aleatória: a conta só vira utilizável no aceite
	senhaTemp, _ := helper.GenerateRandomToken(24)
	senhaHash, err := bcrypt.GenerateFromPassword([]byte(senhaTemp), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	var convite authModel.ConviteModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var user userModel.UserModel
		switch err := tx.First(&user, "user_email = ?", email).Error; {
		case err == nil:
			// conta existente: só ganha novo profile
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = userModel.UserModel{
				UserName:  strings.TrimSpace(req.NomeCompleto),
				UserEmail: email,
				UserSenha: string(senhaHash),
				UserAtivo: false, // ativa no aceite
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		default:
			return err
		}

		var jaMembro int64
		tx.Model(&userModel.ProfileModel{}).
			Where("profile_user_id = ? AND profile_escola_id = ?", user.UserID, escolaID).
			Count(&jaMembro)
		if jaMembro > 0 {
			return errors.New("já é membro desta escola")
		}

		profile := userModel.ProfileModel{
			ProfileUserID:       user.UserID,
			ProfileEscolaID:     escolaID,
			ProfileRole:         req.Role,
			ProfileNomeCompleto: strings.TrimSpace(req.NomeCompleto),
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		convite = authModel.ConviteModel{
			ConviteEscolaID:     escolaID,
			ConviteUserID:       user.UserID,
			ConviteEmail:        email,
			ConviteRole:         req.Role,
			ConviteTokenCifrado: tokenCifrado,
			ConviteTokenHash:    helper.HashSHA256(tokenClaro),
			ConviteStatus:       authModel.ConvitePendente,
			ConviteExpiraEm:     time.Now().Add(conviteTTL),
		}
		return tx.Create(&convite).Error
	})
	if err != nil {
		if strings.Contains(err.Error(), "já é membro") {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar convite")
	}

	// o token em claro sai uma única vez (vai no e-mail/link do frontend)
	return helper.JsonCreated(c, "Convite criado", fiber.Map{
		"convite_id": convite.ConviteID,
		"token":      tokenClaro,
		"expira_em":  convite.ConviteExpiraEm,
	})
}

// ===================== ACEITAR =====================
// POST /auth/aceitar-convite — público: define a senha e ativa a conta.
func (h *ConviteController) Aceitar(c *fiber.Ctx) error {
	var req authDTO.AceitarConviteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// lookup pelo hash; confirma decifrando o token guardado
	var convite authModel.ConviteModel
	err := h.DB.
		Where("convite_token_hash = ? AND convite_status = ? AND convite_expira_em > ?",
			helper.HashSHA256(req.Token), authModel.ConvitePendente, time.Now()).
		First(&convite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Convite inválido ou expirado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar convite")
	}

	claro, err := helper.DecryptAESGCM(helper.DeriveKey(configs.ConviteSecret), convite.ConviteTokenCifrado)
	if err != nil || string(claro) != req.Token {
		return helper.JsonError(c, fiber.StatusNotFound, "Convite inválido ou expirado")
	}

	senhaHash, err := bcrypt.GenerateFromPassword([]byte(req.NovaSenha), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	agora := time.Now()
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", convite.ConviteUserID).
			Updates(map[string]any{
				"user_senha": string(senhaHash),
				"user_ativo": true,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&convite).Updates(map[string]any{
			"convite_status":    authModel.ConviteAceito,
			"convite_aceito_em": agora,
		}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao aceitar convite")
	}

	return helper.JsonOK(c, "Convite aceito, já pode entrar", nil)
}
