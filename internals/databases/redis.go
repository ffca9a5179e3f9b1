package database

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"melodia_backend/internals/configs"
)

var Redis *redis.Client

// ConnectRedis inicializa o client Redis usado pelo cache de relatórios.
// REDIS_ADDR ausente = cache desabilitado (leituras diretas no banco).
func ConnectRedis() {
	addr := configs.GetEnv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR não configurado — cache desabilitado")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: configs.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis indisponível (%v) — cache desabilitado", err)
		return
	}

	Redis = client
	log.Println("✅ Redis conectado.")
}
