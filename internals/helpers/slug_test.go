package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simples", "Escola de Música", "escola-de-musica"},
		{"acentos pt-BR", "Conservatório São João", "conservatorio-sao-joao"},
		{"cedilha", "Canção & Cia", "cancao-cia"},
		{"pontuação colapsada", "Piano -- Avançado!!", "piano-avancado"},
		{"números preservados", "Turma 2026", "turma-2026"},
		{"espaços nas bordas", "  Violão  ", "violao"},
		{"vazio", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlug(tt.in); got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCutToLen(t *testing.T) {
	if got := cutToLen("escola-de-musica", 9); got != "escola-de" {
		t.Errorf("cutToLen = %q, want %q", got, "escola-de")
	}
	// corte no meio de um traço não deixa traço pendurado
	if got := cutToLen("escola-de-musica", 10); got != "escola-de" {
		t.Errorf("cutToLen = %q, want %q", got, "escola-de")
	}
	if got := cutToLen("curto", 0); got != "curto" {
		t.Errorf("cutToLen sem limite = %q", got)
	}
}
