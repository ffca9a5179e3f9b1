package helper

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestComBackoffSucessoImediato(t *testing.T) {
	chamadas := 0
	v, err := ComBackoff(context.Background(), 3, time.Millisecond, func(ctx context.Context) (any, error) {
		chamadas++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if v != 42 || chamadas != 1 {
		t.Errorf("v = %v, chamadas = %d", v, chamadas)
	}
}

func TestComBackoffRetryComEsperaDobrada(t *testing.T) {
	var esperas []time.Duration
	cacheSleep = func(d time.Duration) { esperas = append(esperas, d) }
	defer func() { cacheSleep = time.Sleep }()

	chamadas := 0
	v, err := ComBackoff(context.Background(), 3, 100*time.Millisecond, func(ctx context.Context) (any, error) {
		chamadas++
		if chamadas < 3 {
			return nil, errors.New("banco ocupado")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if v != "ok" || chamadas != 3 {
		t.Errorf("v = %v, chamadas = %d", v, chamadas)
	}

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
	if len(esperas) != len(want) {
		t.Fatalf("esperas = %v", esperas)
	}
	for i := range want {
		if esperas[i] != want[i] {
			t.Errorf("espera[%d] = %v, want %v", i, esperas[i], want[i])
		}
	}
}

func TestComBackoffEsgotaTentativas(t *testing.T) {
	cacheSleep = func(time.Duration) {}
	defer func() { cacheSleep = time.Sleep }()

	sentinela := errors.New("sempre falha")
	chamadas := 0
	_, err := ComBackoff(context.Background(), 4, time.Millisecond, func(ctx context.Context) (any, error) {
		chamadas++
		return nil, sentinela
	})
	if !errors.Is(err, sentinela) {
		t.Errorf("err = %v", err)
	}
	if chamadas != 4 {
		t.Errorf("chamadas = %d, want 4", chamadas)
	}
}

func TestComBackoffContextCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chamadas := 0
	_, err := ComBackoff(ctx, 3, time.Millisecond, func(ctx context.Context) (any, error) {
		chamadas++
		return nil, errors.New("x")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
	if chamadas != 0 {
		t.Errorf("fetch não deveria rodar com context cancelado (chamadas = %d)", chamadas)
	}
}

func TestLembrarSemRedisBuscaDireto(t *testing.T) {
	type resumo struct {
		Total int `json:"total"`
	}

	var out resumo
	err := Lembrar(context.Background(), nil, "k", DefaultCacheOptions, func(ctx context.Context) (any, error) {
		return resumo{Total: 7}, nil
	}, &out)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if out.Total != 7 {
		t.Errorf("out = %+v", out)
	}
}

func TestLembrarSemRedisMantemRetry(t *testing.T) {
	antes := cacheSleep
	cacheSleep = func(time.Duration) {}
	defer func() { cacheSleep = antes }()

	type resumo struct {
		Total int `json:"total"`
	}

	chamadas := 0
	var out resumo
	err := Lembrar(context.Background(), nil, "k", DefaultCacheOptions, func(ctx context.Context) (any, error) {
		chamadas++
		if chamadas < 2 {
			return nil, errors.New("banco ocupado")
		}
		return resumo{Total: 3}, nil
	}, &out)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if chamadas != 2 {
		t.Errorf("chamadas = %d, want 2", chamadas)
	}
	if out.Total != 3 {
		t.Errorf("out = %+v", out)
	}
}
