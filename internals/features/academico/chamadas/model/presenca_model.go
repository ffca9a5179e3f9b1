package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PresencaModel: registro de presença de um aluno numa chamada.
type PresencaModel struct {
	PresencaID        uuid.UUID `gorm:"column:presenca_id;type:uuid;default:gen_random_uuid();primaryKey" json:"presenca_id"`
	PresencaChamadaID uuid.UUID `gorm:"column:presenca_chamada_id;type:uuid;not null;uniqueIndex:uq_presencas_chamada_aluno,priority:1" json:"presenca_chamada_id"`
	PresencaAlunoID   uuid.UUID `gorm:"column:presenca_aluno_id;type:uuid;not null;uniqueIndex:uq_presencas_chamada_aluno,priority:2" json:"presenca_aluno_id"`

	PresencaPresente      bool    `gorm:"column:presenca_presente;not null;default:false" json:"presenca_presente"`
	PresencaJustificativa *string `gorm:"column:presenca_justificativa;type:text" json:"presenca_justificativa,omitempty"`

	PresencaCreatedAt time.Time      `gorm:"column:presenca_created_at;autoCreateTime" json:"presenca_created_at"`
	PresencaUpdatedAt *time.Time     `gorm:"column:presenca_updated_at;autoUpdateTime" json:"presenca_updated_at,omitempty"`
	PresencaDeletedAt gorm.DeletedAt `gorm:"column:presenca_deleted_at;index" json:"presenca_deleted_at,omitempty"`
}

func (PresencaModel) TableName() string { return "presencas" }
