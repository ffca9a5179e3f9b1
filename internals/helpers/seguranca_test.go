package helper

import "testing"

func TestAvaliarSeguranca(t *testing.T) {
	tests := []struct {
		name         string
		texto        string
		wantBloquear bool
	}{
		{
			name:         "texto vazio",
			texto:        "",
			wantBloquear: false,
		},
		{
			name:         "texto normal em português",
			texto:        "Aula de violão da turma avançada, sala 3",
			wantBloquear: false,
		},
		{
			name:         "apostrofe legítimo",
			texto:        "Aluno d'Ávila faltou por atestado",
			wantBloquear: false,
		},
		{
			name:         "union select",
			texto:        "x' UNION SELECT senha FROM users --",
			wantBloquear: true,
		},
		{
			name:         "tautologia or 1=1",
			texto:        "' OR 1=1 --",
			wantBloquear: true,
		},
		{
			name:         "drop table",
			texto:        "ok; DROP TABLE alunos",
			wantBloquear: true,
		},
		{
			name:         "script tag",
			texto:        `<script>alert(1)</script>`,
			wantBloquear: true,
		},
		{
			name:         "event handler inline",
			texto:        `<img src=x onerror=alert(1)>`,
			wantBloquear: true,
		},
		{
			name:         "javascript uri",
			texto:        `clique <a href="javascript:roubar()">aqui</a>`,
			wantBloquear: false, // 35 < limiar sozinho
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			av := AvaliarSeguranca(tt.texto)
			if av.Bloquear != tt.wantBloquear {
				t.Errorf("AvaliarSeguranca(%q) bloquear = %v (score %d, padrões %v), want %v",
					tt.texto, av.Bloquear, av.Score, av.Padroes, tt.wantBloquear)
			}
		})
	}
}

func TestAvaliarSegurancaAcumulaScore(t *testing.T) {
	// dois padrões de peso 35 somam acima do limiar
	av := AvaliarSeguranca(`<a href="javascript:x" onclick=go()>`)
	if av.Score < LimiteRisco {
		t.Errorf("score = %d, esperado >= %d", av.Score, LimiteRisco)
	}
	if len(av.Padroes) < 2 {
		t.Errorf("padrões = %v, esperado ao menos 2", av.Padroes)
	}
	if !av.Bloquear {
		t.Error("combinação de padrões deveria bloquear")
	}
}
