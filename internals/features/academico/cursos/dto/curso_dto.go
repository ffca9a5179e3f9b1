package dto

import (
	"strings"

	"github.com/google/uuid"

	model "melodia_backend/internals/features/academico/cursos/model"
)

/* ===================== REQUESTS ===================== */

// Create: escola_id vem do token, nunca do body.
type CreateCursoRequest struct {
	CursoNome                string  `json:"curso_nome" validate:"required,min=2,max=120"`
	CursoDescricao           *string `json:"curso_descricao" validate:"omitempty"`
	CursoMensalidadeCentavos int     `json:"curso_mensalidade_centavos" validate:"gte=0"`
	CursoDuracaoAulaMin      *int    `json:"curso_duracao_aula_min" validate:"omitempty,gte=15,lte=240"`
}

func (r CreateCursoRequest) ToModel(escolaID uuid.UUID) *model.CursoModel {
	m := &model.CursoModel{
		CursoEscolaID:            escolaID,
		CursoNome:                strings.TrimSpace(r.CursoNome),
		CursoMensalidadeCentavos: r.CursoMensalidadeCentavos,
		CursoDuracaoAulaMin:      50,
		CursoAtivo:               true,
	}
	if r.CursoDescricao != nil {
		d := strings.TrimSpace(*r.CursoDescricao)
		m.CursoDescricao = &d
	}
	if r.CursoDuracaoAulaMin != nil {
		m.CursoDuracaoAulaMin = *r.CursoDuracaoAulaMin
	}
	return m
}

type UpdateCursoRequest struct {
	CursoNome                *string `json:"curso_nome" validate:"omitempty,min=2,max=120"`
	CursoDescricao           *string `json:"curso_descricao" validate:"omitempty"`
	CursoMensalidadeCentavos *int    `json:"curso_mensalidade_centavos" validate:"omitempty,gte=0"`
	CursoDuracaoAulaMin      *int    `json:"curso_duracao_aula_min" validate:"omitempty,gte=15,lte=240"`
	CursoAtivo               *bool   `json:"curso_ativo" validate:"omitempty"`
}

// ApplyToModel aplica só os campos enviados.
func (r *UpdateCursoRequest) ApplyToModel(m *model.CursoModel) {
	if r.CursoNome != nil {
		m.CursoNome = strings.TrimSpace(*r.CursoNome)
	}
	if r.CursoDescricao != nil {
		d := strings.TrimSpace(*r.CursoDescricao)
		m.CursoDescricao = &d
	}
	if r.CursoMensalidadeCentavos != nil {
		m.CursoMensalidadeCentavos = *r.CursoMensalidadeCentavos
	}
	if r.CursoDuracaoAulaMin != nil {
		m.CursoDuracaoAulaMin = *r.CursoDuracaoAulaMin
	}
	if r.CursoAtivo != nil {
		m.CursoAtivo = *r.CursoAtivo
	}
}
