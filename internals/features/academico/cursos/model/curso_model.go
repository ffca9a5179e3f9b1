package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CursoModel: curso oferecido pela escola (Violão, Piano, Canto...).
// O valor da mensalidade alimenta a geração de cobranças do financeiro.
type CursoModel struct {
	CursoID       uuid.UUID `gorm:"column:curso_id;type:uuid;default:gen_random_uuid();primaryKey" json:"curso_id"`
	CursoEscolaID uuid.UUID `gorm:"column:curso_escola_id;type:uuid;not null;index" json:"curso_escola_id"`

	CursoNome              string  `gorm:"column:curso_nome;size:120;not null" json:"curso_nome"`
	CursoDescricao         *string `gorm:"column:curso_descricao;type:text" json:"curso_descricao,omitempty"`
	CursoMensalidadeCentavos int   `gorm:"column:curso_mensalidade_centavos;not null;check:curso_mensalidade_centavos >= 0" json:"curso_mensalidade_centavos"`
	CursoDuracaoAulaMin    int     `gorm:"column:curso_duracao_aula_min;not null;default:50" json:"curso_duracao_aula_min"`
	CursoAtivo             bool    `gorm:"column:curso_ativo;not null;default:true" json:"curso_ativo"`

	CursoCreatedAt time.Time      `gorm:"column:curso_created_at;autoCreateTime" json:"curso_created_at"`
	CursoUpdatedAt *time.Time     `gorm:"column:curso_updated_at;autoUpdateTime" json:"curso_updated_at,omitempty"`
	CursoDeletedAt gorm.DeletedAt `gorm:"column:curso_deleted_at;index" json:"curso_deleted_at,omitempty"`
}

func (CursoModel) TableName() string { return "cursos" }
