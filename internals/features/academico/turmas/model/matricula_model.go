package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatriculaStatus string

const (
	MatriculaAtiva     MatriculaStatus = "ativa"
	MatriculaTrancada  MatriculaStatus = "trancada"
	MatriculaCancelada MatriculaStatus = "cancelada"
)

// MatriculaModel: vínculo aluno ↔ turma. Uma viva por par.
type MatriculaModel struct {
	MatriculaID       uuid.UUID `gorm:"column:matricula_id;type:uuid;default:gen_random_uuid();primaryKey" json:"matricula_id"`
	MatriculaEscolaID uuid.UUID `gorm:"column:matricula_escola_id;type:uuid;not null;index" json:"matricula_escola_id"`
	MatriculaTurmaID  uuid.UUID `gorm:"column:matricula_turma_id;type:uuid;not null;index:idx_matriculas_turma_aluno,priority:1" json:"matricula_turma_id"`
	MatriculaAlunoID  uuid.UUID `gorm:"column:matricula_aluno_id;type:uuid;not null;index:idx_matriculas_turma_aluno,priority:2" json:"matricula_aluno_id"`

	MatriculaStatus MatriculaStatus `gorm:"column:matricula_status;type:varchar(20);not null;default:ativa" json:"matricula_status"`
	MatriculaData   time.Time       `gorm:"column:matricula_data;type:date;not null" json:"matricula_data"`

	MatriculaCreatedAt time.Time      `gorm:"column:matricula_created_at;autoCreateTime" json:"matricula_created_at"`
	MatriculaUpdatedAt *time.Time     `gorm:"column:matricula_updated_at;autoUpdateTime" json:"matricula_updated_at,omitempty"`
	MatriculaDeletedAt gorm.DeletedAt `gorm:"column:matricula_deleted_at;index" json:"matricula_deleted_at,omitempty"`
}

func (MatriculaModel) TableName() string { return "matriculas" }
