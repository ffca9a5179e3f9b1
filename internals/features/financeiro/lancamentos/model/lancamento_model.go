package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LancamentoTipo string

const (
	LancamentoReceita LancamentoTipo = "receita"
	LancamentoDespesa LancamentoTipo = "despesa"
)

type LancamentoStatus string

const (
	LancamentoPendente  LancamentoStatus = "pendente"
	LancamentoPago      LancamentoStatus = "pago"
	LancamentoAtrasado  LancamentoStatus = "atrasado"
	LancamentoCancelado LancamentoStatus = "cancelado"
)

// LancamentoModel: receitas (mensalidades, matrículas) e despesas da escola.
// Mensalidades geradas em lote carregam a competência (MM/AAAA) para
// garantir idempotência por turma+mês.
type LancamentoModel struct {
	LancamentoID       uuid.UUID  `gorm:"column:lancamento_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lancamento_id"`
	LancamentoEscolaID uuid.UUID  `gorm:"column:lancamento_escola_id;type:uuid;not null;index" json:"lancamento_escola_id"`
	LancamentoAlunoID  *uuid.UUID `gorm:"column:lancamento_aluno_id;type:uuid;index" json:"lancamento_aluno_id,omitempty"`
	LancamentoTurmaID  *uuid.UUID `gorm:"column:lancamento_turma_id;type:uuid;index" json:"lancamento_turma_id,omitempty"`

	LancamentoTipo          LancamentoTipo   `gorm:"column:lancamento_tipo;type:varchar(10);not null" json:"lancamento_tipo"`
	LancamentoDescricao     string           `gorm:"column:lancamento_descricao;size:255;not null" json:"lancamento_descricao"`
	LancamentoValorCentavos int64            `gorm:"column:lancamento_valor_centavos;not null;check:lancamento_valor_centavos > 0" json:"lancamento_valor_centavos"`
	LancamentoVencimento    time.Time        `gorm:"column:lancamento_vencimento;type:date;not null;index" json:"lancamento_vencimento"`
	LancamentoCompetencia   *string          `gorm:"column:lancamento_competencia;size:7;index" json:"lancamento_competencia,omitempty"` // MM/AAAA
	LancamentoStatus        LancamentoStatus `gorm:"column:lancamento_status;type:varchar(20);not null;default:pendente;index" json:"lancamento_status"`

	LancamentoPagoEm         *time.Time `gorm:"column:lancamento_pago_em" json:"lancamento_pago_em,omitempty"`
	LancamentoFormaPagamento *string    `gorm:"column:lancamento_forma_pagamento;size:40" json:"lancamento_forma_pagamento,omitempty"`

	// Cobrança online (Midtrans Snap)
	LancamentoOrderID   *string `gorm:"column:lancamento_order_id;size:64;uniqueIndex" json:"lancamento_order_id,omitempty"`
	LancamentoSnapToken *string `gorm:"column:lancamento_snap_token;size:255" json:"lancamento_snap_token,omitempty"`
	LancamentoSnapURL   *string `gorm:"column:lancamento_snap_url;type:text" json:"lancamento_snap_url,omitempty"`

	LancamentoCreatedAt time.Time      `gorm:"column:lancamento_created_at;autoCreateTime" json:"lancamento_created_at"`
	LancamentoUpdatedAt *time.Time     `gorm:"column:lancamento_updated_at;autoUpdateTime" json:"lancamento_updated_at,omitempty"`
	LancamentoDeletedAt gorm.DeletedAt `gorm:"column:lancamento_deleted_at;index" json:"lancamento_deleted_at,omitempty"`
}

func (LancamentoModel) TableName() string { return "lancamentos" }
