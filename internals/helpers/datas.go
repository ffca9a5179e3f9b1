package helper

import (
	"errors"
	"fmt"
	"time"
)

// Helpers de data no fuso padrão da aplicação (America/Sao_Paulo quando
// disponível; UTC como fallback em ambientes sem tzdata).

var fusoPadrao = func() *time.Location {
	if loc, err := time.LoadLocation("America/Sao_Paulo"); err == nil {
		return loc
	}
	return time.UTC
}()

var mesesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatarDataBR formata como dd/mm/aaaa.
func FormatarDataBR(t time.Time) string {
	return t.In(fusoPadrao).Format("02/01/2006")
}

// NomeMes devolve o nome do mês em pt-BR (1..12).
func NomeMes(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return mesesPtBR[mes-1]
}

// Competencia formata mês/ano como "03/2026" (MM/AAAA, cabe em varchar(7)).
// Para exibição por extenso use NomeMes.
func Competencia(mes, ano int) string {
	return fmt.Sprintf("%02d/%d", mes, ano)
}

// InicioDoMes trunca para o primeiro instante do mês.
func InicioDoMes(t time.Time) time.Time {
	t = t.In(fusoPadrao)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, fusoPadrao)
}

// FimDoMes devolve o primeiro instante do mês seguinte (intervalo aberto).
func FimDoMes(t time.Time) time.Time {
	return InicioDoMes(t).AddDate(0, 1, 0)
}

// InicioDoDia trunca para meia-noite local.
func InicioDoDia(t time.Time) time.Time {
	t = t.In(fusoPadrao)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, fusoPadrao)
}

// ValidarNaoFutura rejeita datas após o dia de hoje (chamada de amanhã não existe).
func ValidarNaoFutura(t time.Time) error {
	if InicioDoDia(t).After(InicioDoDia(time.Now())) {
		return errors.New("data no futuro não é permitida")
	}
	return nil
}

// ParseDataISO interpreta "2006-01-02" no fuso padrão.
func ParseDataISO(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, fusoPadrao)
}
