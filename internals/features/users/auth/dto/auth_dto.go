package dto

/* ===================== REQUESTS ===================== */

type RegisterRequest struct {
	UserName  string `json:"user_name" validate:"required,min=3,max=50"`
	UserEmail string `json:"user_email" validate:"required,email"`
	UserSenha string `json:"user_senha" validate:"required,min=8"`
}

// LoginRequest: identifier aceita e-mail ou user_name.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,min=3"`
	Senha      string `json:"senha" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// InviteUserRequest: admin pré-provisiona um membro da escola (invite-user).
type InviteUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	NomeCompleto string `json:"nome_completo" validate:"required,min=3,max=160"`
	Role         string `json:"role" validate:"required,oneof=admin professor aluno"`
}

type AceitarConviteRequest struct {
	Token     string `json:"token" validate:"required"`
	NovaSenha string `json:"nova_senha" validate:"required,min=8"`
}
