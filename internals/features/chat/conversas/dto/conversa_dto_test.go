package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEnqueteAberta(t *testing.T) {
	agora := time.Now()
	passado := agora.Add(-time.Hour)
	futuro := agora.Add(time.Hour)

	tests := []struct {
		name      string
		encerraEm *time.Time
		want      bool
	}{
		{"sem prazo fica aberta", nil, true},
		{"prazo no futuro", &futuro, true},
		{"prazo vencido", &passado, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnqueteAberta(tt.encerraEm, agora); got != tt.want {
				t.Errorf("EnqueteAberta() = %v, want %v", got, tt.want)
			}
		})
	}

	// exatamente no prazo conta como encerrada
	if EnqueteAberta(&agora, agora) {
		t.Error("EnqueteAberta no instante do prazo deveria ser false")
	}
}

func TestContarVotos(t *testing.T) {
	opA, opB, opC := uuid.New(), uuid.New(), uuid.New()
	opcoes := []TallyOpcao{
		{OpcaoID: opA, OpcaoTexto: "Sábado"},
		{OpcaoID: opB, OpcaoTexto: "Domingo"},
		{OpcaoID: opC, OpcaoTexto: "Nenhum"},
	}
	votos := map[uuid.UUID]int64{opA: 5, opB: 2}

	tally, total := ContarVotos(opcoes, votos)
	if total != 7 {
		t.Errorf("total = %d, want 7", total)
	}
	if tally[0].Votos != 5 || tally[1].Votos != 2 {
		t.Errorf("tally = %+v", tally)
	}
	if tally[2].Votos != 0 {
		t.Errorf("opção sem voto deveria ser 0, veio %d", tally[2].Votos)
	}
	// ordem das opções preservada
	if tally[0].OpcaoTexto != "Sábado" || tally[2].OpcaoTexto != "Nenhum" {
		t.Errorf("ordem alterada: %+v", tally)
	}
}
