package dto

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	model "melodia_backend/internals/features/academico/turmas/model"
)

var diasValidos = map[string]struct{}{
	"seg": {}, "ter": {}, "qua": {}, "qui": {}, "sex": {}, "sab": {}, "dom": {},
}

var reHora = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// NormalizarDiasSemana valida e normaliza a lista de dias (seg..dom), sem repetição.
func NormalizarDiasSemana(dias []string) ([]string, error) {
	if len(dias) == 0 {
		return nil, errors.New("informe ao menos um dia da semana")
	}
	seen := make(map[string]struct{}, len(dias))
	out := make([]string, 0, len(dias))
	for _, d := range dias {
		d = strings.ToLower(strings.TrimSpace(d))
		if _, ok := diasValidos[d]; !ok {
			return nil, errors.New("dia inválido: " + d)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}

// ValidarHorario exige HH:MM e início antes do fim (comparação lexicográfica basta).
func ValidarHorario(inicio, fim string) error {
	if !reHora.MatchString(inicio) || !reHora.MatchString(fim) {
		return errors.New("horário deve ser HH:MM")
	}
	if inicio >= fim {
		return errors.New("hora de início deve ser antes do fim")
	}
	return nil
}

/* ===================== REQUESTS ===================== */

type CreateTurmaRequest struct {
	TurmaCursoID     uuid.UUID  `json:"turma_curso_id" validate:"required"`
	TurmaProfessorID *uuid.UUID `json:"turma_professor_id" validate:"omitempty"`
	TurmaNome        string     `json:"turma_nome" validate:"required,min=2,max=120"`
	TurmaDiasSemana  []string   `json:"turma_dias_semana" validate:"required,min=1"`
	TurmaHoraInicio  string     `json:"turma_hora_inicio" validate:"required"`
	TurmaHoraFim     string     `json:"turma_hora_fim" validate:"required"`
	TurmaCapacidade  *int       `json:"turma_capacidade" validate:"omitempty,gt=0,lte=100"`
}

// ToModel normaliza dias/horários; devolve erro de regra antes de tocar o banco.
func (r CreateTurmaRequest) ToModel(escolaID uuid.UUID) (*model.TurmaModel, error) {
	dias, err := NormalizarDiasSemana(r.TurmaDiasSemana)
	if err != nil {
		return nil, err
	}
	if err := ValidarHorario(r.TurmaHoraInicio, r.TurmaHoraFim); err != nil {
		return nil, err
	}

	m := &model.TurmaModel{
		TurmaEscolaID:    escolaID,
		TurmaCursoID:     r.TurmaCursoID,
		TurmaProfessorID: r.TurmaProfessorID,
		TurmaNome:        strings.TrimSpace(r.TurmaNome),
		TurmaDiasSemana:  dias,
		TurmaHoraInicio:  r.TurmaHoraInicio,
		TurmaHoraFim:     r.TurmaHoraFim,
		TurmaCapacidade:  10,
		TurmaAtiva:       true,
	}
	if r.TurmaCapacidade != nil {
		m.TurmaCapacidade = *r.TurmaCapacidade
	}
	return m, nil
}

type UpdateTurmaRequest struct {
	TurmaProfessorID *uuid.UUID `json:"turma_professor_id" validate:"omitempty"`
	TurmaNome        *string    `json:"turma_nome" validate:"omitempty,min=2,max=120"`
	TurmaDiasSemana  []string   `json:"turma_dias_semana" validate:"omitempty,min=1"`
	TurmaHoraInicio  *string    `json:"turma_hora_inicio" validate:"omitempty"`
	TurmaHoraFim     *string    `json:"turma_hora_fim" validate:"omitempty"`
	TurmaCapacidade  *int       `json:"turma_capacidade" validate:"omitempty,gt=0,lte=100"`
	TurmaAtiva       *bool      `json:"turma_ativa" validate:"omitempty"`
}

func (r *UpdateTurmaRequest) ApplyToModel(m *model.TurmaModel) error {
	if r.TurmaProfessorID != nil {
		m.TurmaProfessorID = r.TurmaProfessorID
	}
	if r.TurmaNome != nil {
		m.TurmaNome = strings.TrimSpace(*r.TurmaNome)
	}
	if r.TurmaDiasSemana != nil {
		dias, err := NormalizarDiasSemana(r.TurmaDiasSemana)
		if err != nil {
			return err
		}
		m.TurmaDiasSemana = dias
	}

	inicio, fim := m.TurmaHoraInicio, m.TurmaHoraFim
	if r.TurmaHoraInicio != nil {
		inicio = *r.TurmaHoraInicio
	}
	if r.TurmaHoraFim != nil {
		fim = *r.TurmaHoraFim
	}
	if err := ValidarHorario(inicio, fim); err != nil {
		return err
	}
	m.TurmaHoraInicio, m.TurmaHoraFim = inicio, fim

	if r.TurmaCapacidade != nil {
		m.TurmaCapacidade = *r.TurmaCapacidade
	}
	if r.TurmaAtiva != nil {
		m.TurmaAtiva = *r.TurmaAtiva
	}
	return nil
}

type MatricularRequest struct {
	AlunoID uuid.UUID `json:"aluno_id" validate:"required"`
}

// TemVaga: cabe mais um aluno dado o total de matrículas vivas.
func TemVaga(capacidade int, ocupadas int64) bool {
	return ocupadas < int64(capacidade)
}
