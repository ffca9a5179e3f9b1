package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlunoModel: cadastro do aluno. Responsável preenchido quando menor de idade.
type AlunoModel struct {
	AlunoID        uuid.UUID  `gorm:"column:aluno_id;type:uuid;default:gen_random_uuid();primaryKey" json:"aluno_id"`
	AlunoEscolaID  uuid.UUID  `gorm:"column:aluno_escola_id;type:uuid;not null;index" json:"aluno_escola_id"`
	AlunoProfileID *uuid.UUID `gorm:"column:aluno_profile_id;type:uuid" json:"aluno_profile_id,omitempty"`

	AlunoNome           string     `gorm:"column:aluno_nome;size:160;not null" json:"aluno_nome"`
	AlunoEmail          *string    `gorm:"column:aluno_email;size:255" json:"aluno_email,omitempty"`
	AlunoTelefone       *string    `gorm:"column:aluno_telefone;size:30" json:"aluno_telefone,omitempty"`
	AlunoDataNascimento *time.Time `gorm:"column:aluno_data_nascimento;type:date" json:"aluno_data_nascimento,omitempty"`

	AlunoResponsavelNome     *string `gorm:"column:aluno_responsavel_nome;size:160" json:"aluno_responsavel_nome,omitempty"`
	AlunoResponsavelTelefone *string `gorm:"column:aluno_responsavel_telefone;size:30" json:"aluno_responsavel_telefone,omitempty"`

	AlunoFotoURL *string `gorm:"column:aluno_foto_url;type:text" json:"aluno_foto_url,omitempty"`
	AlunoAtivo   bool    `gorm:"column:aluno_ativo;not null;default:true" json:"aluno_ativo"`

	AlunoCreatedAt time.Time      `gorm:"column:aluno_created_at;autoCreateTime" json:"aluno_created_at"`
	AlunoUpdatedAt *time.Time     `gorm:"column:aluno_updated_at;autoUpdateTime" json:"aluno_updated_at,omitempty"`
	AlunoDeletedAt gorm.DeletedAt `gorm:"column:aluno_deleted_at;index" json:"aluno_deleted_at,omitempty"`
}

func (AlunoModel) TableName() string { return "alunos" }
