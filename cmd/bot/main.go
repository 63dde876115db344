package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/timetable_bot/internal/apiclient"
	"github.com/Freeeeeet/timetable_bot/internal/app"
	"github.com/Freeeeeet/timetable_bot/internal/config"
	"github.com/Freeeeeet/timetable_bot/internal/controller"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting timetable bot",
		zap.String("environment", cfg.Environment),
		zap.String("api_base_url", cfg.APIBaseURL))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Клиент backend-сервиса расписаний
	apiClient := apiclient.NewClient(cfg.APIBaseURL)

	// Сервисы
	userService := service.NewUserService(apiClient, logger)
	scheduleService := service.NewScheduleService(apiClient, logger)

	// Telegram бот
	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		b,
		userService,
		scheduleService,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot shut down")
}
