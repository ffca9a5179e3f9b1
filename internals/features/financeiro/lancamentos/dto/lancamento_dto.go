package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "melodia_backend/internals/features/financeiro/lancamentos/model"
)

type CreateLancamentoRequest struct {
	LancamentoAlunoID       *uuid.UUID `json:"lancamento_aluno_id" validate:"omitempty"`
	LancamentoTurmaID       *uuid.UUID `json:"lancamento_turma_id" validate:"omitempty"`
	LancamentoTipo          string     `json:"lancamento_tipo" validate:"required,oneof=receita despesa"`
	LancamentoDescricao     string     `json:"lancamento_descricao" validate:"required,min=3,max=255"`
	LancamentoValorCentavos int64      `json:"lancamento_valor_centavos" validate:"required,gt=0"`
	LancamentoVencimento    string     `json:"lancamento_vencimento" validate:"required"` // YYYY-MM-DD
}

func (r CreateLancamentoRequest) ToModel(escolaID uuid.UUID, vencimento time.Time) *model.LancamentoModel {
	return &model.LancamentoModel{
		LancamentoEscolaID:      escolaID,
		LancamentoAlunoID:       r.LancamentoAlunoID,
		LancamentoTurmaID:       r.LancamentoTurmaID,
		LancamentoTipo:          model.LancamentoTipo(r.LancamentoTipo),
		LancamentoDescricao:     strings.TrimSpace(r.LancamentoDescricao),
		LancamentoValorCentavos: r.LancamentoValorCentavos,
		LancamentoVencimento:    vencimento,
		LancamentoStatus:        model.LancamentoPendente,
	}
}

type UpdateLancamentoRequest struct {
	LancamentoDescricao     *string `json:"lancamento_descricao" validate:"omitempty,min=3,max=255"`
	LancamentoValorCentavos *int64  `json:"lancamento_valor_centavos" validate:"omitempty,gt=0"`
	LancamentoVencimento    *string `json:"lancamento_vencimento" validate:"omitempty"`
}

func (r *UpdateLancamentoRequest) ApplyToModel(m *model.LancamentoModel, vencimento *time.Time) {
	if r.LancamentoDescricao != nil {
		m.LancamentoDescricao = strings.TrimSpace(*r.LancamentoDescricao)
	}
	if r.LancamentoValorCentavos != nil {
		m.LancamentoValorCentavos = *r.LancamentoValorCentavos
	}
	if vencimento != nil {
		m.LancamentoVencimento = *vencimento
	}
}

type MarcarPagoRequest struct {
	FormaPagamento string  `json:"forma_pagamento" validate:"required,oneof=dinheiro pix cartao boleto online"`
	PagoEm         *string `json:"pago_em" validate:"omitempty"` // YYYY-MM-DD, default hoje
}

type GerarMensalidadesRequest struct {
	TurmaID uuid.UUID `json:"turma_id" validate:"required"`
	Mes     int       `json:"mes" validate:"required,min=1,max=12"`
	Ano     int       `json:"ano" validate:"required,min=2020,max=2100"`
	// Dia do vencimento dentro do mês (default 10).
	DiaVencimento *int `json:"dia_vencimento" validate:"omitempty,min=1,max=28"`
}

// ResumoFinanceiro agrega contadores e somas por status.
type ResumoFinanceiro struct {
	TotalReceitasCentavos int64 `json:"total_receitas_centavos"`
	TotalDespesasCentavos int64 `json:"total_despesas_centavos"`
	TotalPendenteCentavos int64 `json:"total_pendente_centavos"`
	TotalAtrasadoCentavos int64 `json:"total_atrasado_centavos"`
	QtdePendentes         int64 `json:"qtde_pendentes"`
	QtdeAtrasados         int64 `json:"qtde_atrasados"`
	QtdePagos             int64 `json:"qtde_pagos"`
}

type ReceitaMensal struct {
	Competencia   string `json:"competencia"` // MM/AAAA
	ValorCentavos int64  `json:"valor_centavos"`
}
