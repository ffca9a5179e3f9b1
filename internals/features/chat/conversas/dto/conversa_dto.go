package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CriarConversaDiretaRequest struct {
	DestinatarioID uuid.UUID `json:"destinatario_id" validate:"required"`
}

type CriarConversaTurmaRequest struct {
	TurmaID uuid.UUID `json:"turma_id" validate:"required"`
	Titulo  *string   `json:"titulo" validate:"omitempty,max=160"`
}

type EnviarMensagemRequest struct {
	Texto  string         `json:"texto" validate:"required,min=1,max=4000"`
	Anexos datatypes.JSON `json:"anexos" validate:"omitempty"`
}

type CriarEnqueteRequest struct {
	Pergunta  string   `json:"pergunta" validate:"required,min=3,max=255"`
	Opcoes    []string `json:"opcoes" validate:"required,min=2,max=10,dive,required,max=160"`
	EncerraEm *string  `json:"encerra_em" validate:"omitempty"` // RFC3339
}

type VotarRequest struct {
	OpcaoID uuid.UUID `json:"opcao_id" validate:"required"`
}

// TallyOpcao: contagem de votos por opção.
type TallyOpcao struct {
	OpcaoID    uuid.UUID `json:"opcao_id"`
	OpcaoTexto string    `json:"opcao_texto"`
	Votos      int64     `json:"votos"`
}

// EnqueteAberta diz se ainda dá para votar no instante ref.
func EnqueteAberta(encerraEm *time.Time, ref time.Time) bool {
	return encerraEm == nil || ref.Before(*encerraEm)
}

// ContarVotos agrega votos por opção preservando a ordem das opções.
// Opção sem voto aparece com zero.
func ContarVotos(opcoes []TallyOpcao, votosPorOpcao map[uuid.UUID]int64) ([]TallyOpcao, int64) {
	var total int64
	out := make([]TallyOpcao, len(opcoes))
	for i, o := range opcoes {
		o.Votos = votosPorOpcao[o.OpcaoID]
		total += o.Votos
		out[i] = o
	}
	return out, total
}
