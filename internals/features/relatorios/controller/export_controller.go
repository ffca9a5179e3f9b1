package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	lancModel "melodia_backend/internals/features/financeiro/lancamentos/model"
	helper "melodia_backend/internals/helpers"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func enviarXLSX(c *fiber.Ctx, f *excelize.File, nome string) error {
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nome))
	if err := f.Write(c.Response().BodyWriter()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar planilha")
	}
	return nil
}

// ===================== PRESENÇAS =====================
// GET /api/relatorios/export/presencas?turma_id=&de=&ate=
func (h *RelatorioController) ExportPresencas(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	turmaID, err := uuid.Parse(c.Query("turma_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "turma_id inválido")
	}

	de, ate := periodoOuMesAtualRel(c)

	type linha struct {
		ChamadaData   time.Time
		AlunoNome     string
		Presente      bool
		Justificativa *string
	}
	var linhas []linha
	if err := h.DB.Table("presencas").
		Select(`chamadas.chamada_data, alunos.aluno_nome,
			presencas.presenca_presente AS presente,
			presencas.presenca_justificativa AS justificativa`).
		Joins("JOIN chamadas ON chamadas.chamada_id = presencas.presenca_chamada_id AND chamadas.chamada_deleted_at IS NULL").
		Joins("JOIN alunos ON alunos.aluno_id = presencas.presenca_aluno_id AND alunos.aluno_deleted_at IS NULL").
		Where(`chamadas.chamada_turma_id = ? AND chamadas.chamada_escola_id = ?
			AND chamadas.chamada_data >= ? AND chamadas.chamada_data < ?
			AND presencas.presenca_deleted_at IS NULL`, turmaID, escolaID, de, ate).
		Order("chamadas.chamada_data asc, alunos.aluno_nome asc").
		Scan(&linhas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar presenças")
	}

	f := excelize.NewFile()
	defer f.Close()
	const aba = "Presenças"
	f.SetSheetName("Sheet1", aba)

	cabecalho := []string{"Data", "Aluno", "Presente", "Justificativa"}
	for i, titulo := range cabecalho {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(aba, cell, titulo)
	}
	for i, l := range linhas {
		presente := "Não"
		if l.Presente {
			presente = "Sim"
		}
		justificativa := ""
		if l.Justificativa != nil {
			justificativa = *l.Justificativa
		}
		valores := []any{helper.FormatarDataBR(l.ChamadaData), l.AlunoNome, presente, justificativa}
		for j, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(aba, cell, v)
		}
	}

	nome := fmt.Sprintf("presencas_%s_%s.xlsx", de.Format("2006-01-02"), ate.AddDate(0, 0, -1).Format("2006-01-02"))
	return enviarXLSX(c, f, nome)
}

// ===================== LANÇAMENTOS =====================
// GET /api/relatorios/export/lancamentos?mes=&ano=
func (h *RelatorioController) ExportLancamentos(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	agora := time.Now()
	mes, ano := int(agora.Month()), agora.Year()
	if m := c.QueryInt("mes"); m >= 1 && m <= 12 {
		mes = m
	}
	if a := c.QueryInt("ano"); a >= 2020 {
		ano = a
	}
	ref := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.Local)
	de, ate := helper.InicioDoMes(ref), helper.FimDoMes(ref)

	type linha struct {
		lancModel.LancamentoModel
		AlunoNome *string
	}
	var linhas []linha
	if err := h.DB.Table("lancamentos").
		Select("lancamentos.*, alunos.aluno_nome").
		Joins("LEFT JOIN alunos ON alunos.aluno_id = lancamentos.lancamento_aluno_id").
		Where(`lancamentos.lancamento_escola_id = ? AND lancamentos.lancamento_vencimento >= ? AND lancamentos.lancamento_vencimento < ?
			AND lancamentos.lancamento_deleted_at IS NULL`, escolaID, de, ate).
		Order("lancamentos.lancamento_vencimento asc").
		Scan(&linhas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar lançamentos")
	}

	f := excelize.NewFile()
	defer f.Close()
	const aba = "Lançamentos"
	f.SetSheetName("Sheet1", aba)

	cabecalho := []string{"Vencimento", "Descrição", "Aluno", "Tipo", "Valor (R$)", "Status", "Pago em", "Forma"}
	for i, titulo := range cabecalho {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(aba, cell, titulo)
	}
	for i, l := range linhas {
		aluno := ""
		if l.AlunoNome != nil {
			aluno = *l.AlunoNome
		}
		pagoEm := ""
		if l.LancamentoPagoEm != nil {
			pagoEm = helper.FormatarDataBR(*l.LancamentoPagoEm)
		}
		forma := ""
		if l.LancamentoFormaPagamento != nil {
			forma = *l.LancamentoFormaPagamento
		}
		valores := []any{
			helper.FormatarDataBR(l.LancamentoVencimento),
			l.LancamentoDescricao,
			aluno,
			string(l.LancamentoTipo),
			float64(l.LancamentoValorCentavos) / 100,
			string(l.LancamentoStatus),
			pagoEm,
			forma,
		}
		for j, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(aba, cell, v)
		}
	}

	nome := fmt.Sprintf("lancamentos_%02d-%d.xlsx", mes, ano)
	return enviarXLSX(c, f, nome)
}

// O fim devolvido é exclusivo; ?ate= do cliente é inclusivo e vira o dia seguinte.
func periodoOuMesAtualRel(c *fiber.Ctx) (time.Time, time.Time) {
	agora := time.Now()
	de := helper.InicioDoMes(agora)
	ate := helper.FimDoMes(agora)
	if s := c.Query("de"); s != "" {
		if t, err := helper.ParseDataISO(s); err == nil {
			de = t
		}
	}
	if s := c.Query("ate"); s != "" {
		if t, err := helper.ParseDataISO(s); err == nil {
			ate = t.AddDate(0, 0, 1)
		}
	}
	return de, ate
}
