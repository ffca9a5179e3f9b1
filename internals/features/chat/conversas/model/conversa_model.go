package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChaveParDireta identifica a conversa direta de um par de usuários numa
// escola de forma determinística (par em ordem lexicográfica), para o índice
// único impedir duplicata mesmo com duas criações simultâneas.
func ChaveParDireta(escolaID, a, b uuid.UUID) string {
	sa, sb := a.String(), b.String()
	if sb < sa {
		sa, sb = sb, sa
	}
	return escolaID.String() + ":" + sa + ":" + sb
}

type ConversaTipo string

const (
	ConversaDireta  ConversaTipo = "direta"
	ConversaDaTurma ConversaTipo = "turma"
)

// ConversaModel: conversa direta (dois participantes) ou canal da turma.
type ConversaModel struct {
	ConversaID       uuid.UUID  `gorm:"column:conversa_id;type:uuid;default:gen_random_uuid();primaryKey" json:"conversa_id"`
	ConversaEscolaID uuid.UUID  `gorm:"column:conversa_escola_id;type:uuid;not null;index" json:"conversa_escola_id"`
	ConversaTurmaID  *uuid.UUID `gorm:"column:conversa_turma_id;type:uuid;uniqueIndex" json:"conversa_turma_id,omitempty"`

	// preenchida só em conversas diretas, ver ChaveParDireta
	ConversaParChave *string `gorm:"column:conversa_par_chave;size:120;uniqueIndex" json:"-"`

	ConversaTipo   ConversaTipo `gorm:"column:conversa_tipo;type:varchar(10);not null" json:"conversa_tipo"`
	ConversaTitulo *string      `gorm:"column:conversa_titulo;size:160" json:"conversa_titulo,omitempty"`

	ConversaCreatedAt time.Time      `gorm:"column:conversa_created_at;autoCreateTime" json:"conversa_created_at"`
	ConversaUpdatedAt *time.Time     `gorm:"column:conversa_updated_at;autoUpdateTime" json:"conversa_updated_at,omitempty"`
	ConversaDeletedAt gorm.DeletedAt `gorm:"column:conversa_deleted_at;index" json:"conversa_deleted_at,omitempty"`

	Participantes []ParticipanteModel `gorm:"foreignKey:ParticipanteConversaID;references:ConversaID" json:"participantes,omitempty"`
}

func (ConversaModel) TableName() string { return "conversas" }

// ParticipanteModel: vínculo usuário ↔ conversa.
type ParticipanteModel struct {
	ParticipanteID         uuid.UUID `gorm:"column:participante_id;type:uuid;default:gen_random_uuid();primaryKey" json:"participante_id"`
	ParticipanteConversaID uuid.UUID `gorm:"column:participante_conversa_id;type:uuid;not null;uniqueIndex:uq_participantes_conversa_user,priority:1" json:"participante_conversa_id"`
	ParticipanteUserID     uuid.UUID `gorm:"column:participante_user_id;type:uuid;not null;uniqueIndex:uq_participantes_conversa_user,priority:2" json:"participante_user_id"`

	ParticipanteCreatedAt time.Time      `gorm:"column:participante_created_at;autoCreateTime" json:"participante_created_at"`
	ParticipanteDeletedAt gorm.DeletedAt `gorm:"column:participante_deleted_at;index" json:"participante_deleted_at,omitempty"`
}

func (ParticipanteModel) TableName() string { return "participantes" }
