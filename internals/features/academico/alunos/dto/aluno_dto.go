package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "melodia_backend/internals/features/academico/alunos/model"
	helper "melodia_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateAlunoRequest struct {
	AlunoNome           string  `json:"aluno_nome" validate:"required,min=3,max=160"`
	AlunoEmail          *string `json:"aluno_email" validate:"omitempty,email"`
	AlunoTelefone       *string `json:"aluno_telefone" validate:"omitempty,max=30"`
	AlunoDataNascimento *string `json:"aluno_data_nascimento" validate:"omitempty,datetime=2006-01-02"`

	AlunoResponsavelNome     *string `json:"aluno_responsavel_nome" validate:"omitempty,min=3,max=160"`
	AlunoResponsavelTelefone *string `json:"aluno_responsavel_telefone" validate:"omitempty,max=30"`
}

func (r CreateAlunoRequest) ToModel(escolaID uuid.UUID) *model.AlunoModel {
	m := &model.AlunoModel{
		AlunoEscolaID: escolaID,
		AlunoNome:     strings.TrimSpace(r.AlunoNome),
		AlunoAtivo:    true,
	}
	if r.AlunoEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*r.AlunoEmail))
		m.AlunoEmail = &email
	}
	if r.AlunoTelefone != nil {
		tel := strings.TrimSpace(*r.AlunoTelefone)
		m.AlunoTelefone = &tel
	}
	if r.AlunoDataNascimento != nil {
		if d, err := helper.ParseDataISO(*r.AlunoDataNascimento); err == nil {
			m.AlunoDataNascimento = &d
		}
	}
	if r.AlunoResponsavelNome != nil {
		nome := strings.TrimSpace(*r.AlunoResponsavelNome)
		m.AlunoResponsavelNome = &nome
	}
	if r.AlunoResponsavelTelefone != nil {
		tel := strings.TrimSpace(*r.AlunoResponsavelTelefone)
		m.AlunoResponsavelTelefone = &tel
	}
	return m
}

// MenorDeIdade informa se o aluno tem menos de 18 anos na data dada.
func MenorDeIdade(nascimento time.Time, ref time.Time) bool {
	return nascimento.AddDate(18, 0, 0).After(ref)
}

type UpdateAlunoRequest struct {
	AlunoNome           *string `json:"aluno_nome" validate:"omitempty,min=3,max=160"`
	AlunoEmail          *string `json:"aluno_email" validate:"omitempty,email"`
	AlunoTelefone       *string `json:"aluno_telefone" validate:"omitempty,max=30"`
	AlunoDataNascimento *string `json:"aluno_data_nascimento" validate:"omitempty,datetime=2006-01-02"`

	AlunoResponsavelNome     *string `json:"aluno_responsavel_nome" validate:"omitempty,min=3,max=160"`
	AlunoResponsavelTelefone *string `json:"aluno_responsavel_telefone" validate:"omitempty,max=30"`
	AlunoAtivo               *bool   `json:"aluno_ativo" validate:"omitempty"`
}

func (r *UpdateAlunoRequest) ApplyToModel(m *model.AlunoModel) {
	if r.AlunoNome != nil {
		m.AlunoNome = strings.TrimSpace(*r.AlunoNome)
	}
	if r.AlunoEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*r.AlunoEmail))
		m.AlunoEmail = &email
	}
	if r.AlunoTelefone != nil {
		tel := strings.TrimSpace(*r.AlunoTelefone)
		m.AlunoTelefone = &tel
	}
	if r.AlunoDataNascimento != nil {
		if d, err := helper.ParseDataISO(*r.AlunoDataNascimento); err == nil {
			m.AlunoDataNascimento = &d
		}
	}
	if r.AlunoResponsavelNome != nil {
		nome := strings.TrimSpace(*r.AlunoResponsavelNome)
		m.AlunoResponsavelNome = &nome
	}
	if r.AlunoResponsavelTelefone != nil {
		tel := strings.TrimSpace(*r.AlunoResponsavelTelefone)
		m.AlunoResponsavelTelefone = &tel
	}
	if r.AlunoAtivo != nil {
		m.AlunoAtivo = *r.AlunoAtivo
	}
}
