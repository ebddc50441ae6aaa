package app

import (
	"context"
	"fmt"
	"log"

	msgRepo "github.com/IT-Nick/quizbot/internal/domain/messages/repository"
	"github.com/IT-Nick/quizbot/internal/domain/users/repository"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// InitDatabase устанавливает подключение к базе данных и создает таблицы
func InitDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	const op = "app.InitDatabase"

	connConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(context.Background(), connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	for _, schema := range []string{repository.CredentialsSchema, msgRepo.MessagesSchema} {
		if _, err := db.Exec(context.Background(), schema); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: failed to apply schema: %w", op, err)
		}
	}

	log.Println("Database connected successfully!")
	return db, nil
}

// InitRedis устанавливает подключение к Redis
func InitRedis(cfg *config.Config) (*redis.Client, error) {
	const op = "app.InitRedis"

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: failed to ping redis: %w", op, err)
	}

	log.Println("Redis connected successfully!")
	return rdb, nil
}
