package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	model "melodia_backend/internals/features/financeiro/lancamentos/model"
)

var SnapClient snap.Client

// Chamar no bootstrap da app (sandbox).
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GerarLinkPagamento cria o Snap token + redirect_url para um lançamento.
func GerarLinkPagamento(l model.LancamentoModel, orderID, nome, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: l.LancamentoValorCentavos / 100,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: nome,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
