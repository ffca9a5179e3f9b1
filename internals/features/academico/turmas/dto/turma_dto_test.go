package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestNormalizarDiasSemana(t *testing.T) {
	tests := []struct {
		name    string
		dias    []string
		want    []string
		wantErr bool
	}{
		{
			name: "dias válidos normalizados",
			dias: []string{"Seg", " qua ", "SEX"},
			want: []string{"seg", "qua", "sex"},
		},
		{
			name: "duplicados colapsam",
			dias: []string{"seg", "seg", "ter"},
			want: []string{"seg", "ter"},
		},
		{
			name:    "dia inválido",
			dias:    []string{"seg", "segunda"},
			wantErr: true,
		},
		{
			name:    "lista vazia",
			dias:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizarDiasSemana(tt.dias)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidarHorario(t *testing.T) {
	tests := []struct {
		name    string
		inicio  string
		fim     string
		wantErr bool
	}{
		{"intervalo normal", "14:00", "14:50", false},
		{"limite do dia", "23:00", "23:59", false},
		{"início depois do fim", "15:00", "14:00", true},
		{"início igual ao fim", "14:00", "14:00", true},
		{"formato inválido", "14h00", "15:00", true},
		{"hora fora do range", "25:00", "26:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidarHorario(tt.inicio, tt.fim)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidarHorario(%q, %q) err = %v, wantErr %v", tt.inicio, tt.fim, err, tt.wantErr)
			}
		})
	}
}

func TestCreateTurmaRequestToModel(t *testing.T) {
	escolaID := uuid.New()
	cursoID := uuid.New()

	req := CreateTurmaRequest{
		TurmaCursoID:    cursoID,
		TurmaNome:       "  Violão Iniciante A ",
		TurmaDiasSemana: []string{"seg", "qua"},
		TurmaHoraInicio: "18:00",
		TurmaHoraFim:    "18:50",
	}

	m, err := req.ToModel(escolaID)
	if err != nil {
		t.Fatalf("ToModel() err = %v", err)
	}
	if m.TurmaEscolaID != escolaID || m.TurmaCursoID != cursoID {
		t.Error("ids não propagados")
	}
	if m.TurmaNome != "Violão Iniciante A" {
		t.Errorf("nome = %q", m.TurmaNome)
	}
	if m.TurmaCapacidade != 10 {
		t.Errorf("capacidade default = %d, want 10", m.TurmaCapacidade)
	}
	if !m.TurmaAtiva {
		t.Error("turma deveria nascer ativa")
	}

	req.TurmaHoraFim = "17:00"
	if _, err := req.ToModel(escolaID); err == nil {
		t.Error("horário invertido deveria falhar")
	}
}

func TestTemVaga(t *testing.T) {
	tests := []struct {
		name       string
		capacidade int
		ocupadas   int64
		want       bool
	}{
		{"turma vazia", 10, 0, true},
		{"última vaga", 10, 9, true},
		{"lotada", 10, 10, false},
		{"acima do limite", 10, 12, false},
		{"capacidade mínima", 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TemVaga(tt.capacidade, tt.ocupadas); got != tt.want {
				t.Errorf("TemVaga(%d, %d) = %v, want %v", tt.capacidade, tt.ocupadas, got, tt.want)
			}
		})
	}
}

func TestUpdateTurmaRequestHorarioParcial(t *testing.T) {
	escolaID := uuid.New()
	base, err := CreateTurmaRequest{
		TurmaCursoID:    uuid.New(),
		TurmaNome:       "Piano B",
		TurmaDiasSemana: []string{"ter"},
		TurmaHoraInicio: "10:00",
		TurmaHoraFim:    "10:50",
	}.ToModel(escolaID)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	// mover só o fim para antes do início atual deve falhar
	fim := "09:00"
	upd := UpdateTurmaRequest{TurmaHoraFim: &fim}
	if err := upd.ApplyToModel(base); err == nil {
		t.Error("fim antes do início atual deveria falhar")
	}

	// mover os dois juntos é válido
	ini, fim2 := "08:00", "08:50"
	upd2 := UpdateTurmaRequest{TurmaHoraInicio: &ini, TurmaHoraFim: &fim2}
	if err := upd2.ApplyToModel(base); err != nil {
		t.Errorf("ApplyToModel() err = %v", err)
	}
	if base.TurmaHoraInicio != "08:00" || base.TurmaHoraFim != "08:50" {
		t.Errorf("horário = %s-%s", base.TurmaHoraInicio, base.TurmaHoraFim)
	}
}
