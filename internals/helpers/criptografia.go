package helper

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
)

// Wrappers de criptografia usados pelos tokens de convite.
// AES-256-GCM com nonce aleatório prefixado ao ciphertext.

// HashSHA256 devolve o hash hex de um texto.
func HashSHA256(texto string) string {
	sum := sha256.Sum256([]byte(texto))
	return hex.EncodeToString(sum[:])
}

// DeriveKey transforma um segredo de tamanho arbitrário em chave AES-256.
func DeriveKey(segredo string) []byte {
	sum := sha256.Sum256([]byte(segredo))
	return sum[:]
}

// EncryptAESGCM cifra e devolve base64(nonce || ciphertext).
func EncryptAESGCM(chave []byte, plaintext []byte) (string, error) {
	block, err := aes.NewCipher(chave)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	out := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

// DecryptAESGCM desfaz EncryptAESGCM.
func DecryptAESGCM(chave []byte, encoded string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(chave)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(raw) < gcm.NonceSize() {
		return nil, errors.New("ciphertext curto demais")
	}
	nonce, ct := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ct, nil)
}

// GenerateRandomToken devolve um token url-safe com n bytes de entropia.
func GenerateRandomToken(n int) (string, error) {
	if n <= 0 {
		n = 32
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
