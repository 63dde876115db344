package controller

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/handlers"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(
		userService,
		scheduleService,
		stateManager,
		logger,
	)

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(&callbacktypes.Handler{
		UserService:     userService,
		ScheduleService: scheduleService,
		StateManager:    stateManager,
		Logger:          logger,
	})

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Регистрируем команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/create", bot.MatchTypeExact, c.handlers.HandleCreateStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/schedule", bot.MatchTypeExact, c.handlers.HandleScheduleMenu)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/update", bot.MatchTypeExact, c.handlers.HandleEditStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/delete", bot.MatchTypeExact, c.handlers.HandleDeleteStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/statistics", bot.MatchTypeExact, c.handlers.HandleStatistics)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/export", bot.MatchTypeExact, c.handlers.HandleExport)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "help", Description: "❓ Справка по командам"},
		{Command: "create", Description: "➕ Добавить занятие"},
		{Command: "schedule", Description: "📅 Показать расписание"},
		{Command: "update", Description: "✏️ Редактировать занятие"},
		{Command: "delete", Description: "🗑 Удалить занятие"},
		{Command: "statistics", Description: "📊 Статистика занятий"},
		{Command: "export", Description: "📤 Расписание картинкой"},
		{Command: "cancel", Description: "❌ Отменить текущее действие"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
