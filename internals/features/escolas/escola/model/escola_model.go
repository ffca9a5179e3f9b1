package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EscolaModel é o tenant: toda linha de domínio carrega escola_id.
type EscolaModel struct {
	EscolaID   uuid.UUID `gorm:"column:escola_id;type:uuid;default:gen_random_uuid();primaryKey" json:"escola_id"`
	EscolaNome string    `gorm:"column:escola_nome;size:160;not null" json:"escola_nome"`
	EscolaSlug string    `gorm:"column:escola_slug;size:120;unique;not null" json:"escola_slug"`

	EscolaCidade   *string `gorm:"column:escola_cidade;size:120" json:"escola_cidade,omitempty"`
	EscolaTelefone *string `gorm:"column:escola_telefone;size:30" json:"escola_telefone,omitempty"`
	EscolaLogoURL  *string `gorm:"column:escola_logo_url;type:text" json:"escola_logo_url,omitempty"`
	EscolaAtiva    bool    `gorm:"column:escola_ativa;not null;default:true" json:"escola_ativa"`

	EscolaCreatedAt time.Time      `gorm:"column:escola_created_at;autoCreateTime" json:"escola_created_at"`
	EscolaUpdatedAt *time.Time     `gorm:"column:escola_updated_at;autoUpdateTime" json:"escola_updated_at,omitempty"`
	EscolaDeletedAt gorm.DeletedAt `gorm:"column:escola_deleted_at;index" json:"escola_deleted_at,omitempty"`
}

func (EscolaModel) TableName() string { return "escolas" }
