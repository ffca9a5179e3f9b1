package helper

import (
	"bytes"
	"testing"
)

func TestEncryptDecryptAESGCM(t *testing.T) {
	chave := DeriveKey("segredo-de-teste")

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"texto curto", []byte("oi")},
		{"texto com acentos", []byte("convite para João às 14h")},
		{"vazio", []byte("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncryptAESGCM(chave, tt.plaintext)
			if err != nil {
				t.Fatalf("EncryptAESGCM() err = %v", err)
			}

			dec, err := DecryptAESGCM(chave, enc)
			if err != nil {
				t.Fatalf("DecryptAESGCM() err = %v", err)
			}
			if !bytes.Equal(dec, tt.plaintext) {
				t.Errorf("round-trip = %q, want %q", dec, tt.plaintext)
			}
		})
	}
}

func TestDecryptAESGCMChaveErrada(t *testing.T) {
	enc, err := EncryptAESGCM(DeriveKey("chave-a"), []byte("dados"))
	if err != nil {
		t.Fatalf("EncryptAESGCM() err = %v", err)
	}
	if _, err := DecryptAESGCM(DeriveKey("chave-b"), enc); err == nil {
		t.Error("decifrar com chave errada deveria falhar")
	}
}

func TestDecryptAESGCMEntradaInvalida(t *testing.T) {
	chave := DeriveKey("x")
	if _, err := DecryptAESGCM(chave, "aaa"); err == nil {
		t.Error("ciphertext curto deveria falhar")
	}
	if _, err := DecryptAESGCM(chave, "%%%"); err == nil {
		t.Error("base64 inválido deveria falhar")
	}
}

func TestEncryptAESGCMNonceAleatorio(t *testing.T) {
	chave := DeriveKey("k")
	a, _ := EncryptAESGCM(chave, []byte("mesmo texto"))
	b, _ := EncryptAESGCM(chave, []byte("mesmo texto"))
	if a == b {
		t.Error("duas cifragens iguais indicam nonce repetido")
	}
}

func TestHashSHA256(t *testing.T) {
	// vetor conhecido de "abc"
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashSHA256("abc"); got != want {
		t.Errorf("HashSHA256(abc) = %s", got)
	}
}

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken(32)
	if err != nil {
		t.Fatalf("GenerateRandomToken() err = %v", err)
	}
	b, _ := GenerateRandomToken(32)
	if a == b {
		t.Error("dois tokens iguais")
	}
	if len(a) < 40 {
		t.Errorf("token curto: %d", len(a))
	}
}
