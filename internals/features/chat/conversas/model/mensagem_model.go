package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MensagemModel: mensagem de texto com anexos opcionais (JSON de URLs).
type MensagemModel struct {
	MensagemID         uuid.UUID `gorm:"column:mensagem_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mensagem_id"`
	MensagemConversaID uuid.UUID `gorm:"column:mensagem_conversa_id;type:uuid;not null;index" json:"mensagem_conversa_id"`
	MensagemSenderID   uuid.UUID `gorm:"column:mensagem_sender_id;type:uuid;not null;index" json:"mensagem_sender_id"`

	MensagemTexto  string         `gorm:"column:mensagem_texto;type:text;not null" json:"mensagem_texto"`
	MensagemAnexos datatypes.JSON `gorm:"column:mensagem_anexos;type:jsonb" json:"mensagem_anexos,omitempty"`

	MensagemCreatedAt time.Time      `gorm:"column:mensagem_created_at;autoCreateTime;index" json:"mensagem_created_at"`
	MensagemUpdatedAt *time.Time     `gorm:"column:mensagem_updated_at;autoUpdateTime" json:"mensagem_updated_at,omitempty"`
	MensagemDeletedAt gorm.DeletedAt `gorm:"column:mensagem_deleted_at;index" json:"mensagem_deleted_at,omitempty"`
}

func (MensagemModel) TableName() string { return "mensagens" }
