package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TurmaModel: turma de um curso com professor, horário e capacidade.
type TurmaModel struct {
	TurmaID          uuid.UUID  `gorm:"column:turma_id;type:uuid;default:gen_random_uuid();primaryKey" json:"turma_id"`
	TurmaEscolaID    uuid.UUID  `gorm:"column:turma_escola_id;type:uuid;not null;index" json:"turma_escola_id"`
	TurmaCursoID     uuid.UUID  `gorm:"column:turma_curso_id;type:uuid;not null;index" json:"turma_curso_id"`
	TurmaProfessorID *uuid.UUID `gorm:"column:turma_professor_id;type:uuid;index" json:"turma_professor_id,omitempty"`

	TurmaNome       string         `gorm:"column:turma_nome;size:120;not null" json:"turma_nome"`
	TurmaDiasSemana pq.StringArray `gorm:"column:turma_dias_semana;type:text[]" json:"turma_dias_semana,omitempty"`
	TurmaHoraInicio string         `gorm:"column:turma_hora_inicio;type:varchar(5);not null" json:"turma_hora_inicio"` // HH:MM
	TurmaHoraFim    string         `gorm:"column:turma_hora_fim;type:varchar(5);not null" json:"turma_hora_fim"`
	TurmaCapacidade int            `gorm:"column:turma_capacidade;not null;default:10;check:turma_capacidade > 0" json:"turma_capacidade"`
	TurmaAtiva      bool           `gorm:"column:turma_ativa;not null;default:true" json:"turma_ativa"`

	TurmaCreatedAt time.Time      `gorm:"column:turma_created_at;autoCreateTime" json:"turma_created_at"`
	TurmaUpdatedAt *time.Time     `gorm:"column:turma_updated_at;autoUpdateTime" json:"turma_updated_at,omitempty"`
	TurmaDeletedAt gorm.DeletedAt `gorm:"column:turma_deleted_at;index" json:"turma_deleted_at,omitempty"`
}

func (TurmaModel) TableName() string { return "turmas" }
