package dto

import (
	"github.com/google/uuid"
)

type AbrirChamadaRequest struct {
	ChamadaTurmaID    uuid.UUID `json:"chamada_turma_id" validate:"required"`
	ChamadaData       string    `json:"chamada_data" validate:"required"` // YYYY-MM-DD
	ChamadaObservacao *string   `json:"chamada_observacao" validate:"omitempty,max=2000"`

	// Quando true, já cria uma presença (ausente) para cada matrícula ativa.
	PreencherAlunos bool `json:"preencher_alunos"`
}

type PresencaItem struct {
	AlunoID       uuid.UUID `json:"aluno_id" validate:"required"`
	Presente      bool      `json:"presente"`
	Justificativa *string   `json:"justificativa" validate:"omitempty,max=500"`
}

type RegistrarPresencasRequest struct {
	Presencas []PresencaItem `json:"presencas" validate:"required,min=1,dive"`
}

// FrequenciaAluno: agregado de presença por aluno num período.
type FrequenciaAluno struct {
	AlunoID        uuid.UUID `json:"aluno_id"`
	AlunoNome      string    `json:"aluno_nome"`
	TotalChamadas  int64     `json:"total_chamadas"`
	TotalPresencas int64     `json:"total_presencas"`
	Percentual     float64   `json:"percentual"`
}

// CalcularPercentual evita divisão por zero quando ainda não houve chamada.
func CalcularPercentual(presencas, chamadas int64) float64 {
	if chamadas <= 0 {
		return 0
	}
	return float64(presencas) * 100 / float64(chamadas)
}
