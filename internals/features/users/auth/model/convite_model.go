package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConviteStatus string

const (
	ConvitePendente ConviteStatus = "pendente"
	ConviteAceito   ConviteStatus = "aceito"
	ConviteExpirado ConviteStatus = "expirado"
)

// ConviteModel: convite de acesso criado pelo admin da escola (invite-user).
// O token é guardado cifrado (AES-GCM); o e-mail recebe a versão em claro.
type ConviteModel struct {
	ConviteID       uuid.UUID `gorm:"column:convite_id;type:uuid;default:gen_random_uuid();primaryKey" json:"convite_id"`
	ConviteEscolaID uuid.UUID `gorm:"column:convite_escola_id;type:uuid;not null;index" json:"convite_escola_id"`
	ConviteUserID   uuid.UUID `gorm:"column:convite_user_id;type:uuid;not null;index" json:"convite_user_id"`

	ConviteEmail       string        `gorm:"column:convite_email;size:255;not null" json:"convite_email"`
	ConviteRole        string        `gorm:"column:convite_role;type:varchar(20);not null" json:"convite_role"`
	ConviteTokenCifrado string       `gorm:"column:convite_token_cifrado;type:text;not null" json:"-"`
	ConviteTokenHash    string       `gorm:"column:convite_token_hash;size:64;not null;index" json:"-"`
	ConviteStatus      ConviteStatus `gorm:"column:convite_status;type:varchar(20);not null;default:pendente" json:"convite_status"`
	ConviteExpiraEm    time.Time     `gorm:"column:convite_expira_em;not null" json:"convite_expira_em"`
	ConviteAceitoEm    *time.Time    `gorm:"column:convite_aceito_em" json:"convite_aceito_em,omitempty"`

	ConviteCreatedAt time.Time      `gorm:"column:convite_created_at;autoCreateTime" json:"convite_created_at"`
	ConviteDeletedAt gorm.DeletedAt `gorm:"column:convite_deleted_at;index" json:"convite_deleted_at,omitempty"`
}

func (ConviteModel) TableName() string { return "convites" }
