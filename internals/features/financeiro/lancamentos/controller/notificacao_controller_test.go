package controller

import (
	"testing"
	"time"

	lancModel "melodia_backend/internals/features/financeiro/lancamentos/model"
)

func TestMapStatusMidtrans(t *testing.T) {
	tests := []struct {
		name  string
		tx    string
		fraud string
		want  lancModel.LancamentoStatus
	}{
		{"settlement paga", "settlement", "", lancModel.LancamentoPago},
		{"capture aceito paga", "capture", "accept", lancModel.LancamentoPago},
		{"capture em análise fica pendente", "capture", "challenge", lancModel.LancamentoPendente},
		{"pending", "pending", "", lancModel.LancamentoPendente},
		{"expirado cancela", "expire", "", lancModel.LancamentoCancelado},
		{"negado cancela", "deny", "", lancModel.LancamentoCancelado},
		{"status desconhecido", "refund_partial_weird", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapStatusMidtrans(tt.tx, tt.fraud)
			if got != tt.want {
				t.Errorf("mapStatusMidtrans(%q, %q) = %q, want %q", tt.tx, tt.fraud, got, tt.want)
			}
		})
	}
}

func TestParseHoraMidtrans(t *testing.T) {
	body := map[string]interface{}{
		"settlement_time":  "2026-03-10 14:30:00",
		"transaction_time": "2026-03-10 14:25:00",
	}
	got := parseHoraMidtrans(body)
	want := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("parseHoraMidtrans() = %v, want settlement_time %v", got, want)
	}

	// sem settlement_time cai para transaction_time
	delete(body, "settlement_time")
	got = parseHoraMidtrans(body)
	want = time.Date(2026, 3, 10, 14, 25, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("parseHoraMidtrans() = %v, want transaction_time %v", got, want)
	}

	// sem nenhum campo usa o relógio
	antes := time.Now()
	got = parseHoraMidtrans(map[string]interface{}{})
	if got.Before(antes.Add(-time.Second)) {
		t.Errorf("parseHoraMidtrans() vazio deveria usar agora, veio %v", got)
	}
}
