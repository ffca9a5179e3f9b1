package helper

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
)

// Cache read-through para agregados de relatório: devolve o valor do Redis
// enquanto fresco, senão busca no banco com retry e backoff exponencial.
// Sem Redis, pula o cache e vai direto ao fetch, mantendo o mesmo retry.

type CacheOptions struct {
	TTL           time.Duration
	Tentativas    int           // máximo de chamadas ao fetch
	EsperaInicial time.Duration // dobra a cada falha
}

var DefaultCacheOptions = CacheOptions{
	TTL:           60 * time.Second,
	Tentativas:    3,
	EsperaInicial: 200 * time.Millisecond,
}

// trocável em teste
var cacheSleep = time.Sleep

// Lembrar busca `key` no Redis; em miss executa fetch (com retry) e grava o
// resultado serializado com o TTL dado. `out` recebe o valor em ambos os casos.
func Lembrar(ctx context.Context, rdb *redis.Client, key string, opts CacheOptions, fetch func(context.Context) (any, error), out any) error {
	if rdb != nil {
		raw, err := rdb.Get(ctx, key).Bytes()
		if err == nil {
			return sonic.Unmarshal(raw, out)
		}
		if !errors.Is(err, redis.Nil) {
			log.Printf("[WARN] cache get %s: %v", key, err)
		}
	}

	valor, err := ComBackoff(ctx, opts.Tentativas, opts.EsperaInicial, fetch)
	if err != nil {
		return err
	}

	raw, err := sonic.Marshal(valor)
	if err != nil {
		return err
	}
	if rdb != nil {
		if err := rdb.Set(ctx, key, raw, opts.TTL).Err(); err != nil {
			log.Printf("[WARN] cache set %s: %v", key, err)
		}
	}
	return sonic.Unmarshal(raw, out)
}

// Invalidar remove chaves de cache após escritas que mudam agregados.
func Invalidar(ctx context.Context, rdb *redis.Client, keys ...string) {
	if rdb == nil || len(keys) == 0 {
		return
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[WARN] cache del: %v", err)
	}
}

// ComBackoff executa fn até `tentativas` vezes, dobrando a espera entre elas.
func ComBackoff(ctx context.Context, tentativas int, espera time.Duration, fn func(context.Context) (any, error)) (any, error) {
	if tentativas < 1 {
		tentativas = 1
	}
	var ultimoErr error
	for i := 0; i < tentativas; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		valor, err := fn(ctx)
		if err == nil {
			return valor, nil
		}
		ultimoErr = err
		if i < tentativas-1 {
			cacheSleep(espera)
			espera *= 2
		}
	}
	return nil, ultimoErr
}
