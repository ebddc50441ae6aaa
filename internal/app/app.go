package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/active_attempts_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/attempt_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/answer_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/create_quiz_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/goto_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/login_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/logout_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/progress_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/quizzes_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/register_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/results_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/start_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/start_quiz_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/submit_handler"
	"github.com/IT-Nick/quizbot/internal/app/middleware"
	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	msgRepo "github.com/IT-Nick/quizbot/internal/domain/messages/repository"
	msgService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
	"github.com/IT-Nick/quizbot/internal/domain/session"
	"github.com/IT-Nick/quizbot/internal/domain/users/repository"
	"github.com/IT-Nick/quizbot/internal/domain/users/service"
	"github.com/IT-Nick/quizbot/internal/infra/api"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"github.com/IT-Nick/quizbot/internal/infra/timer"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"gopkg.in/telebot.v4"
)

type Services struct {
	userService    *service.UserService
	messageService *msgService.MessageService
	attemptService *attemptsService.AttemptService
	quizService    *quizzesService.QuizService
}

type App struct {
	config *config.Config
	bot    *telebot.Bot
	db     *pgxpool.Pool
	rdb    *redis.Client
	client *api.Client
	server *http.Server

	stopSweeper context.CancelFunc

	Services
}

func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	app := &App{
		config: configImpl,
		client: api.NewClient(configImpl.API.BaseURL, configImpl.API.Timeout),
	}

	store, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.initServices(store)

	return app, nil
}

// initStorage подключает хранилище учетных данных согласно storage.type
func (app *App) initStorage() (repository.CredentialStore, error) {
	switch app.config.Storage.Type {
	case config.StoragePostgres:
		db, err := InitDatabase(app.config)
		if err != nil {
			return nil, err
		}
		app.db = db
		return repository.NewPostgresStore(db), nil
	case config.StorageRedis:
		rdb, err := InitRedis(app.config)
		if err != nil {
			return nil, err
		}
		app.rdb = rdb
		return repository.NewRedisStore(rdb, app.config.Redis.TTL), nil
	default:
		return repository.NewMemoryStore(), nil
	}
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices(store repository.CredentialStore) {
	// Тексты переопределяются только при хранилище в Postgres
	var messageRepo msgService.Repository
	if app.db != nil {
		messageRepo = msgRepo.NewMessageRepository(app.db)
	}

	app.userService = service.NewUserService(store, app.client)
	app.messageService = msgService.NewMessageService(messageRepo)
	app.attemptService = attemptsService.NewAttemptService(app.client, func(token string, quizID int) session.Sink {
		return api.NewSink(app.client, token, quizID)
	})
	app.quizService = quizzesService.NewQuizService(app.client)
}

// ListenAndServeTelegram запускает сервер Telegram бота
func (app *App) ListenAndServeTelegram() error {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: newPoller(app.config),
		OnError: func(err error, c telebot.Context) {
			if c != nil && c.Sender() != nil {
				log.Printf("Handler error for user %d: %v", c.Sender().ID, err)
				return
			}
			log.Printf("Bot error: %v", err)
		},
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	if app.config.Debug {
		app.bot.Use(middleware.Logger(log.New(os.Stdout, "[bot] ", log.LstdFlags)))
		app.bot.Use(middleware.DebugUserActions(true, app.attemptService))
	}
	app.bot.Use(middleware.Recover())

	app.bootstrapHandlersTelegram()

	log.Printf("Starting Telegram bot in %s mode", app.config.TelegramBot.Mode)
	go app.bot.Start()

	app.startSweeper()

	return nil
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	app.bot.Handle("/start", start_handler.NewStartHandler(app.userService, app.messageService).GetHandlerFunc())
	app.bot.Handle("/login", login_handler.NewLoginHandler(app.userService, app.messageService).GetHandlerFunc())
	app.bot.Handle("/register", register_handler.NewRegisterHandler(app.userService, app.messageService).GetHandlerFunc())
	app.bot.Handle("/logout", logout_handler.NewLogoutHandler(app.userService, app.attemptService, app.messageService).GetHandlerFunc())
	app.bot.Handle("/quizzes", quizzes_handler.NewQuizzesHandler(app.userService, app.quizService, app.messageService).GetHandlerFunc())
	app.bot.Handle("/create", create_quiz_handler.NewCreateQuizHandler(app.userService, app.quizService, app.messageService).GetHandlerFunc())
	app.bot.Handle("/progress", progress_handler.NewProgressHandler(app.attemptService, app.messageService).GetHandlerFunc())

	resultsHandler := results_handler.NewResultsHandler(app.userService, app.quizService, app.messageService).GetHandlerFunc()
	app.bot.Handle("/results", resultsHandler)

	// Кнопки попытки. Данные кнопки разбирает соответствующий обработчик.
	app.bot.Handle(&telebot.InlineButton{Unique: model.QuizButtonKey},
		start_quiz_handler.NewStartQuizHandler(app.userService, app.attemptService, app.messageService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.AnswerButtonKey},
		answer_handler.NewAnswerHandler(app.userService, app.attemptService, app.messageService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.GoToButtonKey},
		goto_handler.NewGoToHandler(app.attemptService, app.messageService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.SubmitButtonKey},
		submit_handler.NewSubmitHandler(app.userService, app.attemptService, app.messageService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.ResultsButtonKey}, resultsHandler)
}

// startSweeper запускает удаление брошенных попыток с уведомлением пользователя
func (app *App) startSweeper() {
	ctx, cancel := context.WithCancel(context.Background())
	app.stopSweeper = cancel

	sweeper := timer.NewSweeper(app.attemptService, func(ctx context.Context, attempt *attemptsService.Attempt) {
		text := app.messageService.Text(ctx, model.AttemptExpiredKey)
		if _, err := app.bot.Send(&telebot.User{ID: attempt.TelegramID}, text); err != nil {
			log.Printf("Failed to notify user %d about discarded attempt: %v", attempt.TelegramID, err)
		}
	}, app.config.Attempts.SweepInterval, app.config.Attempts.IdleTTL)

	go sweeper.Run(ctx)
}

// Router маршруты служебного HTTP API
func (app *App) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.Handle("/attempts/active", active_attempts_handler.NewActiveAttemptsHandler(app.attemptService)).Methods(http.MethodGet)
	r.Handle("/attempts/{id}", attempt_handler.NewAttemptHandler(app.attemptService)).Methods(http.MethodGet)

	return r
}

// ListenAndServeHTTP запускает HTTP сервер
func (app *App) ListenAndServeHTTP() error {
	app.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", app.config.Server.Host, app.config.Server.Port),
		Handler: app.Router(),
	}

	log.Printf("Starting HTTP server on %s", app.server.Addr)
	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe запускает оба сервера (Telegram и HTTP)
func (app *App) ListenAndServe() error {
	// Запускаем Telegram сервер
	if err := app.ListenAndServeTelegram(); err != nil {
		return fmt.Errorf("failed to start Telegram bot: %w", err)
	}

	// Запускаем HTTP сервер
	if err := app.ListenAndServeHTTP(); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown останавливает бота и HTTP сервер, закрывает подключения к хранилищам
func (app *App) Shutdown(ctx context.Context) error {
	if app.stopSweeper != nil {
		app.stopSweeper()
	}
	if app.bot != nil {
		app.bot.Stop()
	}

	var err error
	if app.server != nil {
		err = app.server.Shutdown(ctx)
	}
	if app.db != nil {
		app.db.Close()
	}
	if app.rdb != nil {
		if closeErr := app.rdb.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
