package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnqueteModel: enquete dentro de uma conversa, com prazo de votação.
type EnqueteModel struct {
	EnqueteID         uuid.UUID `gorm:"column:enquete_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enquete_id"`
	EnqueteConversaID uuid.UUID `gorm:"column:enquete_conversa_id;type:uuid;not null;index" json:"enquete_conversa_id"`
	EnqueteCriadorID  uuid.UUID `gorm:"column:enquete_criador_id;type:uuid;not null" json:"enquete_criador_id"`

	EnquetePergunta  string     `gorm:"column:enquete_pergunta;size:255;not null" json:"enquete_pergunta"`
	EnqueteEncerraEm *time.Time `gorm:"column:enquete_encerra_em" json:"enquete_encerra_em,omitempty"`

	EnqueteCreatedAt time.Time      `gorm:"column:enquete_created_at;autoCreateTime" json:"enquete_created_at"`
	EnqueteDeletedAt gorm.DeletedAt `gorm:"column:enquete_deleted_at;index" json:"enquete_deleted_at,omitempty"`

	Opcoes []EnqueteOpcaoModel `gorm:"foreignKey:OpcaoEnqueteID;references:EnqueteID" json:"opcoes,omitempty"`
}

func (EnqueteModel) TableName() string { return "enquetes" }

type EnqueteOpcaoModel struct {
	OpcaoID        uuid.UUID `gorm:"column:opcao_id;type:uuid;default:gen_random_uuid();primaryKey" json:"opcao_id"`
	OpcaoEnqueteID uuid.UUID `gorm:"column:opcao_enquete_id;type:uuid;not null;index" json:"opcao_enquete_id"`

	OpcaoTexto string `gorm:"column:opcao_texto;size:160;not null" json:"opcao_texto"`
	OpcaoOrdem int    `gorm:"column:opcao_ordem;not null;default:0" json:"opcao_ordem"`
}

func (EnqueteOpcaoModel) TableName() string { return "enquete_opcoes" }

// EnqueteVotoModel: um voto por usuário por enquete. Revotar troca a opção.
type EnqueteVotoModel struct {
	VotoID        uuid.UUID `gorm:"column:voto_id;type:uuid;default:gen_random_uuid();primaryKey" json:"voto_id"`
	VotoEnqueteID uuid.UUID `gorm:"column:voto_enquete_id;type:uuid;not null;uniqueIndex:uq_votos_enquete_user,priority:1" json:"voto_enquete_id"`
	VotoUserID    uuid.UUID `gorm:"column:voto_user_id;type:uuid;not null;uniqueIndex:uq_votos_enquete_user,priority:2" json:"voto_user_id"`
	VotoOpcaoID   uuid.UUID `gorm:"column:voto_opcao_id;type:uuid;not null;index" json:"voto_opcao_id"`

	VotoCreatedAt time.Time  `gorm:"column:voto_created_at;autoCreateTime" json:"voto_created_at"`
	VotoUpdatedAt *time.Time `gorm:"column:voto_updated_at;autoUpdateTime" json:"voto_updated_at,omitempty"`
}

func (EnqueteVotoModel) TableName() string { return "enquete_votos" }
