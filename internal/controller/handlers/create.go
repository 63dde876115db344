package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCreateStart начинает диалог добавления занятия
func (h *Handlers) HandleCreateStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	h.logger.Info("Starting schedule item creation", zap.Int64("telegram_id", telegramID))

	h.stateManager.SetState(telegramID, state.StateCreateDay)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "📅 Выберите день недели:",
		ReplyMarkup: keyboard.Days(),
	})
}

// handleCreateDayStep обрабатывает выбор дня недели
func (h *Handlers) handleCreateDayStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	day, ok := model.ParseDayLabel(update.Message.Text)
	if !ok {
		h.logger.Warn("Invalid day input",
			zap.Int64("telegram_id", telegramID),
			zap.String("input", update.Message.Text))
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Пожалуйста, выберите день недели из клавиатуры")
		return
	}

	h.stateManager.SetData(telegramID, state.KeyDay, string(day))
	h.stateManager.SetState(telegramID, state.StateCreateTimeStart)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text: "⏰ Введите время начала (формат HH:MM):\n" +
			"Например: 09:00 или 14:30",
		ReplyMarkup: keyboard.Cancel(),
	})
}

// handleCreateTimeStartStep обрабатывает ввод времени начала
func (h *Handlers) handleCreateTimeStartStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	input := strings.TrimSpace(update.Message.Text)

	if !model.IsValidTime(input) {
		h.logger.Warn("Invalid time_start input",
			zap.Int64("telegram_id", telegramID),
			zap.String("input", input))
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Неверный формат времени. Используйте HH:MM (например, 09:30)")
		return
	}

	h.stateManager.SetData(telegramID, state.KeyTimeStart, input)
	h.stateManager.SetState(telegramID, state.StateCreateTimeEnd)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "⏰ Введите время окончания (формат HH:MM):")
}

// handleCreateTimeEndStep обрабатывает ввод времени окончания
func (h *Handlers) handleCreateTimeEndStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	input := strings.TrimSpace(update.Message.Text)

	if !model.IsValidTime(input) {
		h.logger.Warn("Invalid time_end input",
			zap.Int64("telegram_id", telegramID),
			zap.String("input", input))
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Неверный формат времени. Используйте HH:MM (например, 09:30)")
		return
	}

	h.stateManager.SetData(telegramID, state.KeyTimeEnd, input)
	h.stateManager.SetState(telegramID, state.StateCreateSubject)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "📚 Введите название предмета:")
}

// handleCreateSubjectStep обрабатывает ввод названия предмета
func (h *Handlers) handleCreateSubjectStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	subject := strings.TrimSpace(update.Message.Text)

	if subject == "" {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Название предмета не может быть пустым. Попробуйте ещё раз:")
		return
	}

	h.stateManager.SetData(telegramID, state.KeySubject, subject)
	h.stateManager.SetState(telegramID, state.StateCreateDescription)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"📝 Введите описание (или отправьте '-' чтобы пропустить):")
}

// handleCreateDescriptionStep - последний шаг: собираем данные и создаём занятие.
// Успех и ошибка backend одинаково завершают диалог, повторной попытки нет.
func (h *Handlers) handleCreateDescriptionStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	description := strings.TrimSpace(update.Message.Text)
	if description == SkipDescription {
		description = ""
	}

	data := h.stateManager.GetAllData(telegramID)
	day, _ := data[state.KeyDay].(string)
	timeStart, _ := data[state.KeyTimeStart].(string)
	timeEnd, _ := data[state.KeyTimeEnd].(string)
	subject, _ := data[state.KeySubject].(string)

	user, err := h.userService.GetByTelegramID(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to get user at create final step",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.stateManager.ClearState(telegramID)
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}
	if user == nil {
		h.stateManager.ClearState(telegramID)
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID, "❌ Ошибка: пользователь не найден")
		return
	}

	h.logger.Info("Creating schedule item",
		zap.Int64("user_id", user.ID),
		zap.String("day", day),
		zap.String("time_start", timeStart),
		zap.String("time_end", timeEnd),
		zap.String("subject", subject))

	_, err = h.scheduleService.CreateItem(ctx, user.ID, model.Day(day), timeStart, timeEnd, subject, description)

	h.stateManager.ClearState(telegramID)

	if err != nil {
		h.logger.Error("Failed to create schedule item",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	h.sendWithMainMenu(ctx, b, update.Message.Chat.ID,
		formatting.FormatCreatedItem(model.Day(day), timeStart, timeEnd, subject))
}
