package handlers

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleScheduleMenu обрабатывает команду /schedule - предлагает выбрать день
func (h *Handlers) HandleScheduleMenu(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Выберите день недели:",
		ReplyMarkup: keyboard.Days(),
	})
}

// showDaySchedule показывает занятия выбранного дня.
// Каждое занятие уходит отдельным сообщением с кнопками действий.
func (h *Handlers) showDaySchedule(ctx context.Context, b *bot.Bot, update *models.Update, day model.Day) {
	h.logger.Info("Requested day schedule",
		zap.Int64("telegram_id", update.Message.From.ID),
		zap.String("day", string(day)))

	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	items, err := h.scheduleService.GetUserSchedule(ctx, user.ID, day)
	if err != nil {
		h.logger.Error("Failed to get day schedule",
			zap.Int64("user_id", user.ID),
			zap.String("day", string(day)),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	if len(items) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			fmt.Sprintf("📭 На %s занятий нет", day.Label()))
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, fmt.Sprintf("📅 %s:", day.Label()))

	for i := range items {
		item := &items[i]
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      update.Message.Chat.ID,
			Text:        formatting.FormatScheduleItem(item, i+1),
			ReplyMarkup: itemActionsKeyboard(item.ID),
		})
	}
}

// itemActionsKeyboard - inline кнопки действий для одного занятия
func itemActionsKeyboard(itemID int64) *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(
			keyboard.Button("✏️ Редактировать", fmt.Sprintf("item_edit:%d", itemID)),
			keyboard.Button("🗑️ Удалить", fmt.Sprintf("item_delete:%d", itemID)),
		).
		Build()
}
