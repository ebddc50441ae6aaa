package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	app2 "github.com/IT-Nick/quizbot/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	app, err := app2.NewApp(configPath)
	if err != nil {
		log.Fatalf("Не удалось запустить приложение: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Ошибка работы приложения: %v", err)
		}
	case <-ctx.Done():
		log.Println("Получен сигнал остановки")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ошибка при остановке: %v", err)
	}
}
