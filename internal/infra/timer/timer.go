package timer

import (
	"context"
	"log"
	"time"

	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
)

// IdleDiscarder отбрасывает попытки без активности
type IdleDiscarder interface {
	DiscardIdle(maxIdle time.Duration) []*attemptsService.Attempt
}

// Sweeper периодически удаляет брошенные попытки и уведомляет их владельцев
type Sweeper struct {
	attempts IdleDiscarder
	notify   func(ctx context.Context, attempt *attemptsService.Attempt)
	interval time.Duration
	maxIdle  time.Duration
}

// NewSweeper создает Sweeper. notify может быть nil.
func NewSweeper(
	attempts IdleDiscarder,
	notify func(ctx context.Context, attempt *attemptsService.Attempt),
	interval, maxIdle time.Duration,
) *Sweeper {
	return &Sweeper{
		attempts: attempts,
		notify:   notify,
		interval: interval,
		maxIdle:  maxIdle,
	}
}

// Run проверяет попытки каждые interval, пока не отменен ctx
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Idle attempts sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep выполняет одну проверку и возвращает число удаленных попыток
func (s *Sweeper) Sweep(ctx context.Context) int {
	discarded := s.attempts.DiscardIdle(s.maxIdle)
	for _, a := range discarded {
		log.Printf("Attempt %s of user %d on quiz %d discarded after %s idle",
			a.ID, a.TelegramID, a.QuizID, s.maxIdle)
		if s.notify != nil {
			s.notify(ctx, a)
		}
	}
	return len(discarded)
}
