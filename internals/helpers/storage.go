package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"melodia_backend/internals/configs"
)

// Upload de imagens para o storage do Supabase. Fotos passam por resize e
// re-encode em webp antes do PUT (mesmo bucket público que o frontend lê).

const (
	maxLadoImagem  = 512
	qualidadeWebp  = 80
	timeoutStorage = 15 * time.Second
)

var reNomeArquivo = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return reNomeArquivo.ReplaceAllString(filename, "-")
}

// GenerateUniqueFilename prefixa pasta + uuid para evitar colisão no bucket.
func GenerateUniqueFilename(pasta, original string) string {
	base := sanitizeFilename(strings.TrimSuffix(original, filepath.Ext(original)))
	if base == "" {
		base = "arquivo"
	}
	return fmt.Sprintf("%s/%s-%s.webp", strings.Trim(pasta, "/"), uuid.NewString(), base)
}

// ConverterImagemWebp decodifica (jpeg/png), limita o maior lado a 512px e
// re-encoda em webp.
func ConverterImagemWebp(r io.Reader) (*bytes.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imagem inválida: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxLadoImagem || b.Dy() > maxLadoImagem {
		if b.Dx() >= b.Dy() {
			img = imaging.Resize(img, maxLadoImagem, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, maxLadoImagem, imaging.Lanczos)
		}
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: qualidadeWebp}); err != nil {
		return nil, fmt.Errorf("falha ao encodar webp: %w", err)
	}
	return buf, nil
}

// UploadImagemSupabase converte e sobe uma imagem multipart; devolve a URL pública.
func UploadImagemSupabase(pasta string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("falha ao abrir arquivo: %w", err)
	}
	defer src.Close()

	buf, err := ConverterImagemWebp(src)
	if err != nil {
		return "", err
	}

	filename := GenerateUniqueFilename(pasta, fileHeader.Filename)
	if err := UploadSupabase("imagens", filename, "image/webp", buf); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/storage/v1/object/public/imagens/%s",
		configs.SupabaseURL, url.PathEscape(filename)), nil
}

// UploadSupabase faz o PUT autenticado com a service-role key.
func UploadSupabase(bucket, filename, contentType string, data *bytes.Buffer) error {
	if configs.SupabaseURL == "" || configs.SupabaseKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL ou SUPABASE_SERVICE_ROLE_KEY não configurados")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.SupabaseURL, bucket, filename)
	req, err := http.NewRequest(http.MethodPut, endpoint, data)
	if err != nil {
		return fmt.Errorf("falha ao montar request de upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	client := &http.Client{Timeout: timeoutStorage}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("falha no upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("storage respondeu %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
