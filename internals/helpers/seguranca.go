package helper

import (
	"regexp"
	"strings"
)

// Validador de padrões suspeitos (SQLi/XSS) aplicado a entradas de texto.
// É um lint de melhor esforço: a fronteira real de segurança são as queries
// parametrizadas do GORM e as policies do banco. Score >= LimiteRisco bloqueia.

const LimiteRisco = 50

type PadraoSuspeito struct {
	Nome string
	Peso int
	re   *regexp.Regexp
}

type AvaliacaoSeguranca struct {
	Score    int      `json:"score"`
	Padroes  []string `json:"padroes,omitempty"`
	Bloquear bool     `json:"bloquear"`
}

var padroesSuspeitos = []PadraoSuspeito{
	{Nome: "sql_union_select", Peso: 40, re: regexp.MustCompile(`(?i)\bunion\b[\s/*]+\bselect\b`)},
	{Nome: "sql_or_tautologia", Peso: 35, re: regexp.MustCompile(`(?i)['"]\s*or\s+['"]?\d+['"]?\s*=\s*['"]?\d+`)},
	{Nome: "sql_comentario", Peso: 15, re: regexp.MustCompile(`(--|/\*|\*/|#)\s*$`)},
	{Nome: "sql_drop_table", Peso: 50, re: regexp.MustCompile(`(?i);\s*drop\s+table\b`)},
	{Nome: "sql_delete_from", Peso: 40, re: regexp.MustCompile(`(?i);\s*delete\s+from\b`)},
	{Nome: "sql_sleep", Peso: 30, re: regexp.MustCompile(`(?i)\b(sleep|pg_sleep|benchmark)\s*\(`)},
	{Nome: "xss_script_tag", Peso: 50, re: regexp.MustCompile(`(?i)<\s*script[^>]*>`)},
	{Nome: "xss_event_handler", Peso: 35, re: regexp.MustCompile(`(?i)\bon(error|load|click|mouseover|focus)\s*=`)},
	{Nome: "xss_javascript_uri", Peso: 35, re: regexp.MustCompile(`(?i)javascript\s*:`)},
	{Nome: "xss_iframe", Peso: 30, re: regexp.MustCompile(`(?i)<\s*iframe[^>]*>`)},
	{Nome: "xss_img_src_js", Peso: 30, re: regexp.MustCompile(`(?i)<\s*img[^>]+src\s*=`)},
}

// AvaliarSeguranca calcula o score de risco de um texto livre.
func AvaliarSeguranca(texto string) AvaliacaoSeguranca {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return AvaliacaoSeguranca{}
	}

	av := AvaliacaoSeguranca{}
	for _, p := range padroesSuspeitos {
		if p.re.MatchString(texto) {
			av.Score += p.Peso
			av.Padroes = append(av.Padroes, p.Nome)
		}
	}
	av.Bloquear = av.Score >= LimiteRisco
	return av
}
