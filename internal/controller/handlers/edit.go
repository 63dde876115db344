package handlers

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleEditStart начинает диалог редактирования - показывает список занятий
func (h *Handlers) HandleEditStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	items, err := h.scheduleService.GetUserSchedule(ctx, user.ID, "")
	if err != nil {
		h.logger.Error("Failed to get schedule for editing",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	if len(items) == 0 {
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID, "📭 У вас нет занятий для редактирования")
		return
	}

	builder := keyboard.NewBuilder()
	for i := range items {
		item := &items[i]
		builder.Row(keyboard.Button(
			formatting.FormatItemButtonLabel(item),
			fmt.Sprintf("edit_select:%d", item.ID),
		))
	}
	builder.Row(keyboard.Button("❌ Отмена", "flow_cancel"))

	h.stateManager.SetState(update.Message.From.ID, state.StateEditChoosingItem)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "✏️ Выберите занятие для редактирования:",
		ReplyMarkup: builder.Build(),
	})
}

// handleEditValueStep обрабатывает ввод нового значения поля.
// Для полей времени значение проверяется как HH:MM, ошибка не сбрасывает диалог.
func (h *Handlers) handleEditValueStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	fieldVal, okField := h.stateManager.GetData(telegramID, state.KeyEditField)
	_, okItem := h.stateManager.GetData(telegramID, state.KeyItemID)
	field, _ := fieldVal.(string)

	if !okField || !okItem || field == "" {
		h.logger.Error("Edit dialog data missing", zap.Int64("telegram_id", telegramID))
		h.stateManager.ClearState(telegramID)
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID, "❌ Ошибка: данные не найдены")
		return
	}

	newValue := update.Message.Text

	if field == model.FieldTimeStart || field == model.FieldTimeEnd {
		if !model.IsValidTime(newValue) {
			h.logger.Warn("Invalid time value in edit dialog",
				zap.Int64("telegram_id", telegramID),
				zap.String("input", newValue))
			h.sendError(ctx, b, update.Message.Chat.ID,
				"❌ Неверный формат времени. Используйте HH:MM")
			return
		}
	}

	h.stateManager.SetData(telegramID, state.KeyEditValue, newValue)
	h.stateManager.SetState(telegramID, state.StateEditConfirm)

	confirmKeyboard := keyboard.NewBuilder().
		Row(
			keyboard.Button("✅ Да, сохранить", "edit_confirm"),
			keyboard.Button("❌ Отмена", "flow_cancel"),
		).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text: fmt.Sprintf(
			"📝 Подтвердите изменение:\n"+
				"Поле: %s\n"+
				"Новое значение: %s\n\n"+
				"Сохранить изменения?",
			formatting.FieldLabel(field), newValue),
		ReplyMarkup: confirmKeyboard,
	})
}
