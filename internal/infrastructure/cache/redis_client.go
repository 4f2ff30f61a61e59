package cache

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the client for the auth collaborator's session
// store. Returns nil when Redis is unreachable or unconfigured; the
// wizard then starts every session with an empty draft.
//
// Env vars: REDIS_HOST (default: localhost), REDIS_PORT (default: 6379).
func ConnectRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: "",
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if status := rdb.Ping(ctx); status.Err() != nil {
		log.Printf("[session][redis] unreachable; draft prefill disabled err=%v", status.Err())
		return nil
	}
	log.Printf("[session][redis] connected addr=%s:%s", host, port)
	return rdb
}
