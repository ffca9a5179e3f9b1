package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alunoModel "melodia_backend/internals/features/academico/alunos/model"
	cursoModel "melodia_backend/internals/features/academico/cursos/model"
	turmaModel "melodia_backend/internals/features/academico/turmas/model"
	lancDTO "melodia_backend/internals/features/financeiro/lancamentos/dto"
	lancModel "melodia_backend/internals/features/financeiro/lancamentos/model"
	lancService "melodia_backend/internals/features/financeiro/lancamentos/service"
	helper "melodia_backend/internals/helpers"
)

type LancamentoController struct{ DB *gorm.DB }

func NewLancamentoController(db *gorm.DB) *LancamentoController {
	return &LancamentoController{DB: db}
}

var validateLancamento = validator.New()

// ===================== CREATE =====================
// POST /api/financeiro/lancamentos
func (h *LancamentoController) Create(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req lancDTO.CreateLancamentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateLancamento.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	vencimento, err := helper.ParseDataISO(req.LancamentoVencimento)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Vencimento deve ser YYYY-MM-DD")
	}

	if req.LancamentoAlunoID != nil {
		var n int64
		if err := h.DB.Model(&alunoModel.AlunoModel{}).
			Where("aluno_id = ? AND aluno_escola_id = ?", *req.LancamentoAlunoID, escolaID).
			Count(&n).Error; err != nil || n == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Aluno não pertence a esta escola")
		}
	}

	m := req.ToModel(escolaID, vencimento)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar lançamento")
	}
	return helper.JsonCreated(c, "Lançamento criado", m)
}

// ===================== LIST =====================
// GET /api/financeiro/lancamentos?tipo=&status=&aluno_id=&turma_id=&de=&ate=
func (h *LancamentoController) List(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)
	q := h.DB.Model(&lancModel.LancamentoModel{}).Where("lancamento_escola_id = ?", escolaID)

	if tipo := c.Query("tipo"); tipo == "receita" || tipo == "despesa" {
		q = q.Where("lancamento_tipo = ?", tipo)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("lancamento_status = ?", status)
	}
	if alunoID := c.Query("aluno_id"); alunoID != "" {
		if id, err := uuid.Parse(alunoID); err == nil {
			q = q.Where("lancamento_aluno_id = ?", id)
		}
	}
	if turmaID := c.Query("turma_id"); turmaID != "" {
		if id, err := uuid.Parse(turmaID); err == nil {
			q = q.Where("lancamento_turma_id = ?", id)
		}
	}
	if de := c.Query("de"); de != "" {
		if t, err := helper.ParseDataISO(de); err == nil {
			q = q.Where("lancamento_vencimento >= ?", t)
		}
	}
	if ate := c.Query("ate"); ate != "" {
		if t, err := helper.ParseDataISO(ate); err == nil {
			q = q.Where("lancamento_vencimento <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar lançamentos")
	}

	var lista []lancModel.LancamentoModel
	if err := q.Order("lancamento_vencimento desc").Offset(paging.Offset).Limit(paging.Limit).Find(&lista).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar lançamentos")
	}
	return helper.JsonList(c, "OK", lista, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== GET =====================
// GET /api/financeiro/lancamentos/:id
func (h *LancamentoController) GetByID(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m lancModel.LancamentoModel
	if err := h.DB.First(&m, "lancamento_id = ? AND lancamento_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lançamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar lançamento")
	}
	return helper.JsonOK(c, "OK", m)
}

// ===================== UPDATE =====================
// PUT /api/financeiro/lancamentos/:id (só pendente/atrasado)
func (h *LancamentoController) Update(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req lancDTO.UpdateLancamentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateLancamento.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var vencimento *time.Time
	if req.LancamentoVencimento != nil {
		t, err := helper.ParseDataISO(*req.LancamentoVencimento)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Vencimento deve ser YYYY-MM-DD")
		}
		vencimento = &t
	}

	var m lancModel.LancamentoModel
	if err := h.DB.First(&m, "lancamento_id = ? AND lancamento_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lançamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar lançamento")
	}
	if m.LancamentoStatus == lancModel.LancamentoPago || m.LancamentoStatus == lancModel.LancamentoCancelado {
		return helper.JsonError(c, fiber.StatusConflict, "Lançamento pago ou cancelado não pode ser alterado")
	}

	req.ApplyToModel(&m, vencimento)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar lançamento")
	}
	return helper.JsonUpdated(c, "Lançamento atualizado", m)
}

// ===================== CANCELAR =====================
// DELETE /api/financeiro/lancamentos/:id (cancela, não paga)
func (h *LancamentoController) Cancelar(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Model(&lancModel.LancamentoModel{}).
		Where("lancamento_id = ? AND lancamento_escola_id = ? AND lancamento_status IN ?",
			id, escolaID, []lancModel.LancamentoStatus{lancModel.LancamentoPendente, lancModel.LancamentoAtrasado}).
		Update("lancamento_status", lancModel.LancamentoCancelado)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao cancelar lançamento")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lançamento aberto não encontrado")
	}
	return helper.JsonUpdated(c, "Lançamento cancelado", fiber.Map{"lancamento_id": id})
}

// ===================== MARCAR PAGO =====================
// POST /api/financeiro/lancamentos/:id/pagar
func (h *LancamentoController) MarcarPago(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req lancDTO.MarcarPagoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateLancamento.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	pagoEm := time.Now()
	if req.PagoEm != nil {
		t, err := helper.ParseDataISO(*req.PagoEm)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "pago_em deve ser YYYY-MM-DD")
		}
		if err := helper.ValidarNaoFutura(t); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		pagoEm = t
	}

	var m lancModel.LancamentoModel
	if err := h.DB.First(&m, "lancamento_id = ? AND lancamento_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lançamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar lançamento")
	}
	if m.LancamentoStatus == lancModel.LancamentoPago {
		return helper.JsonError(c, fiber.StatusConflict, "Lançamento já está pago")
	}
	if m.LancamentoStatus == lancModel.LancamentoCancelado {
		return helper.JsonError(c, fiber.StatusConflict, "Lançamento cancelado não pode ser pago")
	}

	m.LancamentoStatus = lancModel.LancamentoPago
	m.LancamentoPagoEm = &pagoEm
	m.LancamentoFormaPagamento = &req.FormaPagamento
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao registrar pagamento")
	}
	return helper.JsonUpdated(c, "Pagamento registrado", m)
}

// ===================== MENSALIDADES =====================
// POST /api/financeiro/mensalidades
// Uma receita por matrícula ativa da turma, no valor do curso.
// Idempotente por turma+competência: quem já tem lançamento no mês é pulado.
func (h *LancamentoController) GerarMensalidades(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req lancDTO.GerarMensalidadesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validateLancamento.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	competencia := helper.Competencia(req.Mes, req.Ano)
	diaVenc := 10
	if req.DiaVencimento != nil {
		diaVenc = *req.DiaVencimento
	}
	vencimento := time.Date(req.Ano, time.Month(req.Mes), diaVenc, 0, 0, 0, 0, time.Local)

	var gerados int
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var turma turmaModel.TurmaModel
		if err := tx.First(&turma, "turma_id = ? AND turma_escola_id = ?", req.TurmaID, escolaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Turma não encontrada")
			}
			return err
		}

		var curso cursoModel.CursoModel
		if err := tx.First(&curso, "curso_id = ?", turma.TurmaCursoID).Error; err != nil {
			return err
		}
		if curso.CursoMensalidadeCentavos <= 0 {
			return fiber.NewError(fiber.StatusConflict, "Curso sem mensalidade configurada")
		}

		var alunoIDs []uuid.UUID
		if err := tx.Model(&turmaModel.MatriculaModel{}).
			Where("matricula_turma_id = ? AND matricula_status = ?", req.TurmaID, turmaModel.MatriculaAtiva).
			Pluck("matricula_aluno_id", &alunoIDs).Error; err != nil {
			return err
		}
		if len(alunoIDs) == 0 {
			return fiber.NewError(fiber.StatusConflict, "Turma sem matrículas ativas")
		}

		// quem já tem mensalidade desta turma na competência não entra de novo
		var jaLancados []uuid.UUID
		if err := tx.Model(&lancModel.LancamentoModel{}).
			Where(`lancamento_turma_id = ? AND lancamento_competencia = ?
				AND lancamento_status <> ?`, req.TurmaID, competencia, lancModel.LancamentoCancelado).
			Pluck("lancamento_aluno_id", &jaLancados).Error; err != nil {
			return err
		}
		existentes := make(map[uuid.UUID]struct{}, len(jaLancados))
		for _, id := range jaLancados {
			existentes[id] = struct{}{}
		}

		turmaID := req.TurmaID
		comp := competencia
		novos := make([]lancModel.LancamentoModel, 0, len(alunoIDs))
		for _, alunoID := range alunoIDs {
			if _, ok := existentes[alunoID]; ok {
				continue
			}
			id := alunoID
			novos = append(novos, lancModel.LancamentoModel{
				LancamentoEscolaID:      escolaID,
				LancamentoAlunoID:       &id,
				LancamentoTurmaID:       &turmaID,
				LancamentoTipo:          lancModel.LancamentoReceita,
				LancamentoDescricao:     fmt.Sprintf("Mensalidade %s - %s", comp, turma.TurmaNome),
				LancamentoValorCentavos: int64(curso.CursoMensalidadeCentavos),
				LancamentoVencimento:    vencimento,
				LancamentoCompetencia:   &comp,
				LancamentoStatus:        lancModel.LancamentoPendente,
			})
		}
		if len(novos) > 0 {
			if err := tx.Create(&novos).Error; err != nil {
				return err
			}
		}
		gerados = len(novos)
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar mensalidades")
	}
	return helper.JsonCreated(c, "Mensalidades geradas", fiber.Map{
		"turma_id":    req.TurmaID,
		"competencia": competencia,
		"gerados":     gerados,
	})
}

// ===================== LINK DE PAGAMENTO =====================
// POST /api/financeiro/lancamentos/:id/link-pagamento
func (h *LancamentoController) GerarLinkPagamento(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m lancModel.LancamentoModel
	if err := h.DB.First(&m, "lancamento_id = ? AND lancamento_escola_id = ?", id, escolaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lançamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar lançamento")
	}
	if m.LancamentoTipo != lancModel.LancamentoReceita {
		return helper.JsonError(c, fiber.StatusConflict, "Só receitas geram link de pagamento")
	}
	if m.LancamentoStatus == lancModel.LancamentoPago || m.LancamentoStatus == lancModel.LancamentoCancelado {
		return helper.JsonError(c, fiber.StatusConflict, "Lançamento não está aberto")
	}
	if m.LancamentoSnapURL != nil {
		return helper.JsonOK(c, "Link já gerado", fiber.Map{
			"order_id":     m.LancamentoOrderID,
			"snap_token":   m.LancamentoSnapToken,
			"redirect_url": m.LancamentoSnapURL,
		})
	}

	nome, email := "Responsável Financeiro", ""
	if m.LancamentoAlunoID != nil {
		var aluno alunoModel.AlunoModel
		if err := h.DB.First(&aluno, "aluno_id = ?", *m.LancamentoAlunoID).Error; err == nil {
			nome = aluno.AlunoNome
			if aluno.AlunoEmail != nil {
				email = *aluno.AlunoEmail
			}
		}
	}

	orderID := fmt.Sprintf("LANC-%s", m.LancamentoID.String())
	token, url, err := lancService.GerarLinkPagamento(m, orderID, nome, email)
	if err != nil {
		log.Println("[ERROR] falha ao criar transação Snap:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Erro ao gerar link de pagamento")
	}

	m.LancamentoOrderID = &orderID
	m.LancamentoSnapToken = &token
	m.LancamentoSnapURL = &url
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar link de pagamento")
	}
	return helper.JsonOK(c, "Link de pagamento gerado", fiber.Map{
		"order_id":     orderID,
		"snap_token":   token,
		"redirect_url": url,
	})
}

// ===================== RESUMO =====================
// GET /api/financeiro/resumo?mes=&ano=
func (h *LancamentoController) Resumo(c *fiber.Ctx) error {
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

	var resumo lancDTO.ResumoFinanceiro
	if err := h.DB.Model(&lancModel.LancamentoModel{}).
		Select(`
			COALESCE(SUM(lancamento_valor_centavos) FILTER (WHERE lancamento_tipo = 'receita' AND lancamento_status = 'pago'), 0) AS total_receitas_centavos,
			COALESCE(SUM(lancamento_valor_centavos) FILTER (WHERE lancamento_tipo = 'despesa' AND lancamento_status = 'pago'), 0) AS total_despesas_centavos,
			COALESCE(SUM(lancamento_valor_centavos) FILTER (WHERE lancamento_status = 'pendente'), 0) AS total_pendente_centavos,
			COALESCE(SUM(lancamento_valor_centavos) FILTER (WHERE lancamento_status = 'atrasado'), 0) AS total_atrasado_centavos,
			COUNT(*) FILTER (WHERE lancamento_status = 'pendente') AS qtde_pendentes,
			COUNT(*) FILTER (WHERE lancamento_status = 'atrasado') AS qtde_atrasados,
			COUNT(*) FILTER (WHERE lancamento_status = 'pago') AS qtde_pagos`).
		Where("lancamento_escola_id = ? AND lancamento_vencimento >= ? AND lancamento_vencimento < ?", escolaID, de, ate).
		Scan(&resumo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao montar resumo")
	}

	type receitaTurma struct {
		TurmaID       uuid.UUID `json:"turma_id"`
		TurmaNome     string    `json:"turma_nome"`
		ValorCentavos int64     `json:"valor_centavos"`
	}
	var porTurma []receitaTurma
	if err := h.DB.Table("lancamentos").
		Select(`lancamentos.lancamento_turma_id AS turma_id, turmas.turma_nome,
			COALESCE(SUM(lancamentos.lancamento_valor_centavos), 0) AS valor_centavos`).
		Joins("JOIN turmas ON turmas.turma_id = lancamentos.lancamento_turma_id").
		Where(`lancamentos.lancamento_escola_id = ? AND lancamentos.lancamento_tipo = 'receita'
			AND lancamentos.lancamento_status = 'pago'
			AND lancamentos.lancamento_vencimento >= ? AND lancamentos.lancamento_vencimento < ?
			AND lancamentos.lancamento_deleted_at IS NULL`, escolaID, de, ate).
		Group("lancamentos.lancamento_turma_id, turmas.turma_nome").
		Order("valor_centavos desc").
		Scan(&porTurma).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao agrupar receita por turma")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"competencia":       helper.Competencia(mes, ano),
		"resumo":            resumo,
		"receita_por_turma": porTurma,
	})
}

// ===================== SÉRIE MENSAL =====================
// GET /api/financeiro/serie-mensal?ano=
// 12 buckets, receita paga por mês.
func (h *LancamentoController) SerieMensal(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	ano := time.Now().Year()
	if a := c.QueryInt("ano"); a >= 2020 {
		ano = a
	}

	type linha struct {
		Mes           int   `json:"mes"`
		ValorCentavos int64 `json:"valor_centavos"`
	}
	var linhas []linha
	if err := h.DB.Model(&lancModel.LancamentoModel{}).
		Select(`EXTRACT(MONTH FROM lancamento_vencimento)::int AS mes,
			COALESCE(SUM(lancamento_valor_centavos), 0) AS valor_centavos`).
		Where(`lancamento_escola_id = ? AND lancamento_tipo = 'receita'
			AND lancamento_status = 'pago'
			AND EXTRACT(YEAR FROM lancamento_vencimento) = ?`, escolaID, ano).
		Group("mes").
		Scan(&linhas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao montar série mensal")
	}

	serie := make([]lancDTO.ReceitaMensal, 12)
	for i := 0; i < 12; i++ {
		serie[i] = lancDTO.ReceitaMensal{Competencia: helper.Competencia(i+1, ano)}
	}
	for _, l := range linhas {
		if l.Mes >= 1 && l.Mes <= 12 {
			serie[l.Mes-1].ValorCentavos = l.ValorCentavos
		}
	}
	return helper.JsonOK(c, "OK", fiber.Map{"ano": ano, "serie": serie})
}

// ===================== VARREDURA =====================
// POST /api/financeiro/varrer-atrasados
// Pendentes com vencimento no passado viram atrasados.
func (h *LancamentoController) VarrerAtrasados(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	res := h.DB.Model(&lancModel.LancamentoModel{}).
		Where(`lancamento_escola_id = ? AND lancamento_status = ?
			AND lancamento_vencimento < ?`, escolaID, lancModel.LancamentoPendente, helper.InicioDoDia(time.Now())).
		Update("lancamento_status", lancModel.LancamentoAtrasado)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro na varredura de atrasados")
	}
	return helper.JsonUpdated(c, "Varredura concluída", fiber.Map{"marcados": res.RowsAffected})
}

// MarcarAtrasadosVencidos roda a mesma varredura para todas as escolas.
// Usada pelo scheduler diário.
func MarcarAtrasadosVencidos(db *gorm.DB) (int64, error) {
	res := db.Model(&lancModel.LancamentoModel{}).
		Where("lancamento_status = ? AND lancamento_vencimento < ?",
			lancModel.LancamentoPendente, helper.InicioDoDia(time.Now())).
		Update("lancamento_status", lancModel.LancamentoAtrasado)
	return res.RowsAffected, res.Error
}
