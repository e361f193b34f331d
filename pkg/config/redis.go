package config

import (
	"context"
	"log"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the session/preference cache
func InitRedis(cfg *Config) (*redis.Client, error) {
	redisDB, err := strconv.Atoi(cfg.RedisDB)
	if err != nil {
		redisDB = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       redisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	log.Println("Successfully connected to Redis!")
	return client, nil
}
