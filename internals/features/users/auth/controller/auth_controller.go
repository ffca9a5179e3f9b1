package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"melodia_backend/internals/configs"
	authDTO "melodia_backend/internals/features/users/auth/dto"
	authService "melodia_backend/internals/features/users/auth/service"
	userModel "melodia_backend/internals/features/users/user/model"
	helper "melodia_backend/internals/helpers"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

// ===================== REGISTER =====================
// POST /auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))
	var existente userModel.UserModel
	if err := h.DB.First(&existente, "user_email = ?", email).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao verificar e-mail")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserSenha), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	user := userModel.UserModel{
		UserName:  strings.TrimSpace(req.UserName),
		UserEmail: email,
		UserSenha: string(hash),
		UserAtivo: true,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar conta")
	}

	return helper.JsonCreated(c, "Conta criada", fiber.Map{
		"user_id":    user.UserID,
		"user_name":  user.UserName,
		"user_email": user.UserEmail,
	})
}

// ===================== LOGIN =====================
// POST /auth/login — identifier = e-mail ou user_name
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ident := strings.TrimSpace(req.Identifier)
	var user userModel.UserModel
	err := h.DB.
		Where("user_email = ? OR user_name = ?", strings.ToLower(ident), ident).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro no login")
	}

	if !user.UserAtivo {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserSenha), []byte(req.Senha)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	return h.responderComTokens(c, user, "Login efetuado")
}

// ===================== LOGIN GOOGLE =====================
// POST /auth/login-google — verifica o ID token e vincula pela e-mail.
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusNotImplemented, "Login Google não configurado")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token inválido")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token ilegível")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	var user userModel.UserModel
	switch err := h.DB.First(&user, "user_email = ?", email).Error; {
	case err == nil:
		if user.UserGoogleID == nil {
			sub := claimSet.Sub
			h.DB.Model(&user).Update("user_google_id", &sub)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// contas entram pela escola (convite/provisionamento); Google não cria conta órfã
		return helper.JsonError(c, fiber.StatusForbidden, "Nenhuma conta para este e-mail; peça um convite à sua escola")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro no login")
	}

	if !user.UserAtivo {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}
	return h.responderComTokens(c, user, "Login Google efetuado")
}

// ===================== REFRESH =====================
// POST /auth/refresh — rotação: o refresh usado entra na blacklist.
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var black int64
	h.DB.Table("token_blacklists").
		Where("token_blacklist_token = ? AND token_blacklist_deleted_at IS NULL", req.RefreshToken).
		Count(&black)
	if black > 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token revogado")
	}

	userID, exp, err := authService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	if time.Now().After(exp) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token expirado")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !user.UserAtivo {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	if err := authService.BlacklistToken(h.DB, req.RefreshToken, exp); err != nil {
		log.Printf("[ERROR] blacklist do refresh: %v", err)
	}
	return h.responderComTokens(c, user, "Tokens renovados")
}

// ===================== LOGOUT =====================
// POST /auth/logout — revoga access e refresh.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	var access string
	if parts := strings.SplitN(auth, " ", 2); len(parts) == 2 {
		access = strings.TrimSpace(parts[1])
	}

	var req authDTO.RefreshRequest
	_ = c.BodyParser(&req) // refresh no body é opcional

	if access != "" {
		if err := authService.BlacklistToken(h.DB, access, time.Now().Add(2*time.Hour)); err != nil {
			log.Printf("[ERROR] blacklist do access: %v", err)
		}
	}
	if req.RefreshToken != "" {
		_, exp, err := authService.ParseRefreshToken(req.RefreshToken)
		if err == nil {
			if err := authService.BlacklistToken(h.DB, req.RefreshToken, exp); err != nil {
				log.Printf("[ERROR] blacklist do refresh: %v", err)
			}
		}
	}
	return helper.JsonOK(c, "Logout efetuado", nil)
}

// ===================== ME =====================
// GET /api/me — user + profiles (um por escola).
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão inválida")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	var profiles []userModel.ProfileModel
	if err := h.DB.Where("profile_user_id = ?", userID).Find(&profiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar profiles")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"user":     user,
		"profiles": profiles,
	})
}

func (h *AuthController) responderComTokens(c *fiber.Ctx, user userModel.UserModel, msg string) error {
	pair, err := authService.IssueTokens(h.DB, user)
	if err != nil {
		log.Printf("[ERROR] emissão de tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir tokens")
	}
	return helper.JsonOK(c, msg, fiber.Map{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"user": fiber.Map{
			"user_id":    user.UserID,
			"user_name":  user.UserName,
			"user_email": user.UserEmail,
		},
	})
}
