package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"melodia_backend/internals/configs"
	"melodia_backend/internals/constants"
	authModel "melodia_backend/internals/features/users/auth/model"
	userModel "melodia_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 2 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Memberships agrupa os vínculos do user por papel, por escola.
type Memberships struct {
	AdminIDs     []string
	ProfessorIDs []string
	AlunoIDs     []string
	Role         string // papel "principal" informado no token
}

// LoadMemberships lê os profiles vivos do user e monta as listas por papel.
func LoadMemberships(db *gorm.DB, userID uuid.UUID) (Memberships, error) {
	var profiles []userModel.ProfileModel
	if err := db.Where("profile_user_id = ?", userID).Find(&profiles).Error; err != nil {
		return Memberships{}, err
	}

	var ms Memberships
	for _, p := range profiles {
		id := p.ProfileEscolaID.String()
		switch p.ProfileRole {
		case constants.RoleAdmin:
			ms.AdminIDs = append(ms.AdminIDs, id)
		case constants.RoleProfessor:
			ms.ProfessorIDs = append(ms.ProfessorIDs, id)
		case constants.RoleAluno:
			ms.AlunoIDs = append(ms.AlunoIDs, id)
		}
	}

	// papel principal: admin > professor > aluno
	switch {
	case len(ms.AdminIDs) > 0:
		ms.Role = constants.RoleAdmin
	case len(ms.ProfessorIDs) > 0:
		ms.Role = constants.RoleProfessor
	case len(ms.AlunoIDs) > 0:
		ms.Role = constants.RoleAluno
	}
	return ms, nil
}

func (m Memberships) uniao() []string {
	seen := make(map[string]struct{}, len(m.AdminIDs)+len(m.ProfessorIDs)+len(m.AlunoIDs))
	var out []string
	for _, lista := range [][]string{m.AdminIDs, m.ProfessorIDs, m.AlunoIDs} {
		for _, id := range lista {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out
}

func buildAccessClaims(user userModel.UserModel, ms Memberships, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ":       "access",
		"sub":       user.UserID.String(),
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      ms.Role,
		"is_owner":  user.UserIsOwner,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	if len(ms.AdminIDs) > 0 {
		claims["escola_admin_ids"] = ms.AdminIDs
	}
	if len(ms.ProfessorIDs) > 0 {
		claims["escola_professor_ids"] = ms.ProfessorIDs
	}
	if len(ms.AlunoIDs) > 0 {
		claims["escola_aluno_ids"] = ms.AlunoIDs
	}
	if uniao := ms.uniao(); len(uniao) > 0 {
		claims["escola_ids"] = uniao
		claims["escola_ativa_id"] = uniao[0]
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// IssueTokens assina o par access+refresh para o user.
func IssueTokens(db *gorm.DB, user userModel.UserModel) (TokenPair, error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return TokenPair{}, errors.New("segredos JWT não configurados")
	}

	ms, err := LoadMemberships(db, user.UserID)
	if err != nil {
		return TokenPair{}, err
	}

	now := time.Now()
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, ms, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.UserID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ParseRefreshToken valida o refresh e devolve o user_id.
func ParseRefreshToken(tokenString string) (uuid.UUID, time.Time, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inesperado")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, time.Time{}, errors.New("token não é refresh")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, time.Time{}, errors.New("sub inválido")
	}

	exp := time.Time{}
	if f, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(f), 0)
	}
	return userID, exp, nil
}

// BlacklistToken grava o token revogado até o exp dado.
func BlacklistToken(db *gorm.DB, token string, expiraEm time.Time) error {
	if token == "" {
		return nil
	}
	if expiraEm.IsZero() {
		expiraEm = time.Now().Add(refreshTTLDefault)
	}
	return db.Create(&authModel.TokenBlacklistModel{
		TokenBlacklistToken:    token,
		TokenBlacklistExpiraEm: expiraEm,
	}).Error
}
