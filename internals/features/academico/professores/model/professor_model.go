package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ProfessorModel: cadastro do corpo docente. O vínculo com uma conta de
// acesso (profile) é opcional — professor pode existir só como registro.
type ProfessorModel struct {
	ProfessorID        uuid.UUID  `gorm:"column:professor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"professor_id"`
	ProfessorEscolaID  uuid.UUID  `gorm:"column:professor_escola_id;type:uuid;not null;index" json:"professor_escola_id"`
	ProfessorProfileID *uuid.UUID `gorm:"column:professor_profile_id;type:uuid" json:"professor_profile_id,omitempty"`

	ProfessorNome           string         `gorm:"column:professor_nome;size:160;not null" json:"professor_nome"`
	ProfessorEmail          *string        `gorm:"column:professor_email;size:255" json:"professor_email,omitempty"`
	ProfessorTelefone       *string        `gorm:"column:professor_telefone;size:30" json:"professor_telefone,omitempty"`
	ProfessorEspecialidades pq.StringArray `gorm:"column:professor_especialidades;type:text[]" json:"professor_especialidades,omitempty"`
	ProfessorAtivo          bool           `gorm:"column:professor_ativo;not null;default:true" json:"professor_ativo"`

	ProfessorCreatedAt time.Time      `gorm:"column:professor_created_at;autoCreateTime" json:"professor_created_at"`
	ProfessorUpdatedAt *time.Time     `gorm:"column:professor_updated_at;autoUpdateTime" json:"professor_updated_at,omitempty"`
	ProfessorDeletedAt gorm.DeletedAt `gorm:"column:professor_deleted_at;index" json:"professor_deleted_at,omitempty"`
}

func (ProfessorModel) TableName() string { return "professores" }
