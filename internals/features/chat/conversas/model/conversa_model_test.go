package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestChaveParDireta(t *testing.T) {
	escola := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	a := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000")
	b := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000")

	// independe da ordem dos participantes
	if ChaveParDireta(escola, a, b) != ChaveParDireta(escola, b, a) {
		t.Errorf("chave deveria ser simétrica: %q != %q",
			ChaveParDireta(escola, a, b), ChaveParDireta(escola, b, a))
	}

	chave := ChaveParDireta(escola, b, a)
	partes := strings.Split(chave, ":")
	if len(partes) != 3 {
		t.Fatalf("chave = %q, want escola:menor:maior", chave)
	}
	if partes[0] != escola.String() || partes[1] != a.String() || partes[2] != b.String() {
		t.Errorf("chave = %q, par fora de ordem", chave)
	}

	// o mesmo par em outra escola é outra conversa
	outraEscola := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	if ChaveParDireta(escola, a, b) == ChaveParDireta(outraEscola, a, b) {
		t.Error("chaves de escolas diferentes não podem colidir")
	}
}
