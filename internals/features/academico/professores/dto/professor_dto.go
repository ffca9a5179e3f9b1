package dto

import (
	"strings"

	"github.com/google/uuid"

	model "melodia_backend/internals/features/academico/professores/model"
)

/* ===================== REQUESTS ===================== */

type CreateProfessorRequest struct {
	ProfessorNome           string     `json:"professor_nome" validate:"required,min=3,max=160"`
	ProfessorEmail          *string    `json:"professor_email" validate:"omitempty,email"`
	ProfessorTelefone       *string    `json:"professor_telefone" validate:"omitempty,max=30"`
	ProfessorEspecialidades []string   `json:"professor_especialidades" validate:"omitempty,dive,min=2,max=60"`
	ProfessorProfileID      *uuid.UUID `json:"professor_profile_id" validate:"omitempty"`
}

func (r CreateProfessorRequest) ToModel(escolaID uuid.UUID) *model.ProfessorModel {
	m := &model.ProfessorModel{
		ProfessorEscolaID:  escolaID,
		ProfessorProfileID: r.ProfessorProfileID,
		ProfessorNome:      strings.TrimSpace(r.ProfessorNome),
		ProfessorAtivo:     true,
	}
	if r.ProfessorEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*r.ProfessorEmail))
		m.ProfessorEmail = &email
	}
	if r.ProfessorTelefone != nil {
		tel := strings.TrimSpace(*r.ProfessorTelefone)
		m.ProfessorTelefone = &tel
	}
	for _, e := range r.ProfessorEspecialidades {
		if e = strings.TrimSpace(e); e != "" {
			m.ProfessorEspecialidades = append(m.ProfessorEspecialidades, e)
		}
	}
	return m
}

type UpdateProfessorRequest struct {
	ProfessorNome           *string  `json:"professor_nome" validate:"omitempty,min=3,max=160"`
	ProfessorEmail          *string  `json:"professor_email" validate:"omitempty,email"`
	ProfessorTelefone       *string  `json:"professor_telefone" validate:"omitempty,max=30"`
	ProfessorEspecialidades []string `json:"professor_especialidades" validate:"omitempty,dive,min=2,max=60"`
	ProfessorAtivo          *bool    `json:"professor_ativo" validate:"omitempty"`
}

func (r *UpdateProfessorRequest) ApplyToModel(m *model.ProfessorModel) {
	if r.ProfessorNome != nil {
		m.ProfessorNome = strings.TrimSpace(*r.ProfessorNome)
	}
	if r.ProfessorEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*r.ProfessorEmail))
		m.ProfessorEmail = &email
	}
	if r.ProfessorTelefone != nil {
		tel := strings.TrimSpace(*r.ProfessorTelefone)
		m.ProfessorTelefone = &tel
	}
	if r.ProfessorEspecialidades != nil {
		m.ProfessorEspecialidades = nil
		for _, e := range r.ProfessorEspecialidades {
			if e = strings.TrimSpace(e); e != "" {
				m.ProfessorEspecialidades = append(m.ProfessorEspecialidades, e)
			}
		}
	}
	if r.ProfessorAtivo != nil {
		m.ProfessorAtivo = *r.ProfessorAtivo
	}
}
