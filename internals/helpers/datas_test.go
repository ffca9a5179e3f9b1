package helper

import (
	"testing"
	"time"
)

func TestValidarNaoFutura(t *testing.T) {
	hoje := InicioDoDia(time.Now())

	tests := []struct {
		name    string
		data    time.Time
		wantErr bool
	}{
		{
			name:    "ontem é permitido",
			data:    hoje.AddDate(0, 0, -1),
			wantErr: false,
		},
		{
			name:    "hoje é permitido",
			data:    hoje,
			wantErr: false,
		},
		{
			name:    "amanhã é rejeitado",
			data:    hoje.AddDate(0, 0, 1),
			wantErr: true,
		},
		{
			name:    "ano que vem é rejeitado",
			data:    hoje.AddDate(1, 0, 0),
			wantErr: true,
		},
		{
			name:    "passado distante é permitido",
			data:    hoje.AddDate(-3, 0, 0),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidarNaoFutura(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidarNaoFutura() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInicioFimDoMes(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 18, 30, 0, 0, fusoPadrao)

	ini := InicioDoMes(ref)
	if ini.Day() != 1 || ini.Month() != time.March || ini.Hour() != 0 {
		t.Errorf("InicioDoMes() = %v", ini)
	}

	fim := FimDoMes(ref)
	if fim.Day() != 1 || fim.Month() != time.April {
		t.Errorf("FimDoMes() = %v", fim)
	}
	if !ini.Before(fim) {
		t.Errorf("intervalo invertido: %v >= %v", ini, fim)
	}
}

// A janela mensal é meio-aberta: o primeiro instante do mês seguinte fica
// fora do período, então nenhum dia entra em dois meses ao mesmo tempo.
func TestJanelaMensalMeioAberta(t *testing.T) {
	ref := time.Date(2026, time.August, 10, 12, 0, 0, 0, fusoPadrao)
	de, ate := InicioDoMes(ref), FimDoMes(ref)

	dentro := time.Date(2026, time.August, 31, 23, 59, 59, 0, fusoPadrao)
	if dentro.Before(de) || !dentro.Before(ate) {
		t.Errorf("31/08 deveria pertencer à janela [%v, %v)", de, ate)
	}

	viradaDoMes := time.Date(2026, time.September, 1, 0, 0, 0, 0, fusoPadrao)
	if viradaDoMes.Before(ate) {
		t.Errorf("01/09 não pode pertencer à janela de agosto (ate = %v)", ate)
	}
	if !viradaDoMes.Equal(ate) {
		t.Errorf("ate = %v, want %v", ate, viradaDoMes)
	}

	// a janela de setembro começa exatamente onde a de agosto termina
	if !InicioDoMes(viradaDoMes).Equal(ate) {
		t.Errorf("janelas adjacentes não se encaixam: %v != %v", InicioDoMes(viradaDoMes), ate)
	}
}

func TestNomeMes(t *testing.T) {
	tests := []struct {
		mes  int
		want string
	}{
		{1, "janeiro"},
		{3, "março"},
		{12, "dezembro"},
		{0, ""},
		{13, ""},
	}
	for _, tt := range tests {
		if got := NomeMes(tt.mes); got != tt.want {
			t.Errorf("NomeMes(%d) = %q, want %q", tt.mes, got, tt.want)
		}
	}
}

func TestCompetencia(t *testing.T) {
	tests := []struct {
		mes  int
		ano  int
		want string
	}{
		{2, 2026, "02/2026"},
		{11, 2025, "11/2025"},
		{12, 2030, "12/2030"},
	}
	for _, tt := range tests {
		got := Competencia(tt.mes, tt.ano)
		if got != tt.want {
			t.Errorf("Competencia(%d, %d) = %q, want %q", tt.mes, tt.ano, got, tt.want)
		}
		// a coluna de competência é varchar(7)
		if len(got) != 7 {
			t.Errorf("Competencia(%d, %d) = %q tem %d bytes, want 7", tt.mes, tt.ano, got, len(got))
		}
	}
}

func TestParseDataISO(t *testing.T) {
	d, err := ParseDataISO("2026-08-30")
	if err != nil {
		t.Fatalf("ParseDataISO() err = %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.August || d.Day() != 30 {
		t.Errorf("ParseDataISO() = %v", d)
	}

	if _, err := ParseDataISO("30/08/2026"); err == nil {
		t.Error("formato BR deveria falhar no parse ISO")
	}
}
