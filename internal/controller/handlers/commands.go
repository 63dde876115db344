package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	from := update.Message.From

	h.logger.Info("User started bot", zap.Int64("telegram_id", from.ID))

	user, err := h.userService.Register(ctx, from.ID, from.Username, from.FirstName)
	if err != nil {
		h.logger.Error("Failed to register user",
			zap.Int64("telegram_id", from.ID),
			zap.Error(err))
		// Бот остаётся доступным даже если backend лежит
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID,
			"Привет! 😊\n"+
				"Я бот для управления расписанием.\n"+
				"⚠️ Сервер временно недоступен")
		return
	}

	h.sendWithMainMenu(ctx, b, update.Message.Chat.ID,
		fmt.Sprintf("Привет, %s! 👋\nЯ бот для управления расписанием.", user.FirstName))
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📋 Команды бота:\n\n" +
		"/start - Запуск бота\n" +
		"/create - Добавить занятие\n" +
		"/update - Редактировать занятие\n" +
		"/delete - Удалить занятие\n" +
		"/schedule - Показать расписание\n" +
		"/statistics - Статистика\n" +
		"/export - Экспорт расписания картинкой\n" +
		"/cancel - Отменить текущее действие\n" +
		"/help - Помощь\n\n" +
		"⏰ Формат времени: HH:MM (например, 14:30)"

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendWithMainMenu(ctx, b, update.Message.Chat.ID, "❌ Действие отменено")
}

// HandleTextMessage обрабатывает текстовые сообщения.
// Внутри диалога ввод уходит в таблицу переходов по текущему шагу,
// вне диалога текст трактуется как кнопка меню или название дня недели.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются своими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	text := update.Message.Text
	currentState := h.stateManager.GetState(telegramID)

	h.logger.Debug("Text message",
		zap.Int64("telegram_id", telegramID),
		zap.String("text", text),
		zap.String("state", string(currentState)))

	// Отмена работает из любого шага любого диалога
	if text == keyboard.BtnCancel {
		h.stateManager.ClearState(telegramID)
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID, "❌ Действие отменено")
		return
	}

	if currentState != state.StateNone {
		step, ok := h.dialogSteps[currentState]
		if !ok {
			// Шаги выбора занятия/поля и подтверждения ждут нажатия inline
			// кнопки - обычный текст на них не продвигает диалог
			h.sendMessage(ctx, b, update.Message.Chat.ID,
				"Используйте кнопки под сообщением или /cancel для отмены.")
			return
		}
		step(ctx, b, update)
		return
	}

	// Вне диалога: кнопки главного меню
	switch text {
	case keyboard.BtnShowSchedule:
		h.HandleScheduleMenu(ctx, b, update)
	case keyboard.BtnCreate:
		h.HandleCreateStart(ctx, b, update)
	case keyboard.BtnDelete:
		h.HandleDeleteStart(ctx, b, update)
	case keyboard.BtnEdit:
		h.HandleEditStart(ctx, b, update)
	case keyboard.BtnStatistics:
		h.HandleStatistics(ctx, b, update)
	case keyboard.BtnExport:
		h.HandleExport(ctx, b, update)
	case keyboard.BtnHelp:
		h.HandleHelp(ctx, b, update)
	case keyboard.BtnMainMenu:
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID, "Вы в главном меню")
	default:
		if day, ok := model.ParseDayLabel(text); ok {
			h.showDaySchedule(ctx, b, update, day)
			return
		}
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID,
			"🤔 Я не понял ваше сообщение.\n"+
				"Используйте кнопки меню или команду /help для справки.")
	}
}
