package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChamadaModel: uma chamada por turma por dia.
type ChamadaModel struct {
	ChamadaID       uuid.UUID `gorm:"column:chamada_id;type:uuid;default:gen_random_uuid();primaryKey" json:"chamada_id"`
	ChamadaEscolaID uuid.UUID `gorm:"column:chamada_escola_id;type:uuid;not null;index" json:"chamada_escola_id"`
	ChamadaTurmaID  uuid.UUID `gorm:"column:chamada_turma_id;type:uuid;not null;index:idx_chamadas_turma_data,priority:1" json:"chamada_turma_id"`

	ChamadaData       time.Time `gorm:"column:chamada_data;type:date;not null;index:idx_chamadas_turma_data,priority:2" json:"chamada_data"`
	ChamadaObservacao *string   `gorm:"column:chamada_observacao;type:text" json:"chamada_observacao,omitempty"`

	ChamadaCreatedAt time.Time      `gorm:"column:chamada_created_at;autoCreateTime" json:"chamada_created_at"`
	ChamadaUpdatedAt *time.Time     `gorm:"column:chamada_updated_at;autoUpdateTime" json:"chamada_updated_at,omitempty"`
	ChamadaDeletedAt gorm.DeletedAt `gorm:"column:chamada_deleted_at;index" json:"chamada_deleted_at,omitempty"`

	Presencas []PresencaModel `gorm:"foreignKey:PresencaChamadaID;references:ChamadaID" json:"presencas,omitempty"`
}

func (ChamadaModel) TableName() string { return "chamadas" }
