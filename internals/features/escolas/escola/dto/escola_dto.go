package dto

import (
	"strings"

	"github.com/google/uuid"

	model "melodia_backend/internals/features/escolas/escola/model"
)

/* ===================== REQUESTS ===================== */

type UpdateEscolaRequest struct {
	EscolaNome     *string `json:"escola_nome" validate:"omitempty,min=3,max=160"`
	EscolaCidade   *string `json:"escola_cidade" validate:"omitempty,max=120"`
	EscolaTelefone *string `json:"escola_telefone" validate:"omitempty,max=30"`
	EscolaAtiva    *bool   `json:"escola_ativa" validate:"omitempty"`
}

// ApplyToModel aplica só os campos enviados (partial update).
func (r *UpdateEscolaRequest) ApplyToModel(m *model.EscolaModel) {
	if r.EscolaNome != nil {
		m.EscolaNome = strings.TrimSpace(*r.EscolaNome)
	}
	if r.EscolaCidade != nil {
		cidade := strings.TrimSpace(*r.EscolaCidade)
		m.EscolaCidade = &cidade
	}
	if r.EscolaTelefone != nil {
		tel := strings.TrimSpace(*r.EscolaTelefone)
		m.EscolaTelefone = &tel
	}
	if r.EscolaAtiva != nil {
		m.EscolaAtiva = *r.EscolaAtiva
	}
}

// CreateAccessRequest: provisionamento privilegiado — cria a escola e o
// primeiro admin em uma transação (equivalente da function create-access).
type CreateAccessRequest struct {
	EscolaNome     string  `json:"escola_nome" validate:"required,min=3,max=160"`
	EscolaCidade   *string `json:"escola_cidade" validate:"omitempty,max=120"`
	EscolaTelefone *string `json:"escola_telefone" validate:"omitempty,max=30"`

	AdminNome  string `json:"admin_nome" validate:"required,min=3,max=160"`
	AdminEmail string `json:"admin_email" validate:"required,email"`
	AdminSenha string `json:"admin_senha" validate:"required,min=8"`
}

func (r CreateAccessRequest) ToEscolaModel(slug string) *model.EscolaModel {
	m := &model.EscolaModel{
		EscolaNome:  strings.TrimSpace(r.EscolaNome),
		EscolaSlug:  slug,
		EscolaAtiva: true,
	}
	if r.EscolaCidade != nil {
		cidade := strings.TrimSpace(*r.EscolaCidade)
		m.EscolaCidade = &cidade
	}
	if r.EscolaTelefone != nil {
		tel := strings.TrimSpace(*r.EscolaTelefone)
		m.EscolaTelefone = &tel
	}
	return m
}

/* ===================== RESPONSES ===================== */

type EscolaResponse struct {
	EscolaID       uuid.UUID `json:"escola_id"`
	EscolaNome     string    `json:"escola_nome"`
	EscolaSlug     string    `json:"escola_slug"`
	EscolaCidade   *string   `json:"escola_cidade,omitempty"`
	EscolaTelefone *string   `json:"escola_telefone,omitempty"`
	EscolaLogoURL  *string   `json:"escola_logo_url,omitempty"`
	EscolaAtiva    bool      `json:"escola_ativa"`
}

func FromModel(m *model.EscolaModel) EscolaResponse {
	return EscolaResponse{
		EscolaID:       m.EscolaID,
		EscolaNome:     m.EscolaNome,
		EscolaSlug:     m.EscolaSlug,
		EscolaCidade:   m.EscolaCidade,
		EscolaTelefone: m.EscolaTelefone,
		EscolaLogoURL:  m.EscolaLogoURL,
		EscolaAtiva:    m.EscolaAtiva,
	}
}
