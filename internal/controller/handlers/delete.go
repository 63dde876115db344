package handlers

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleDeleteStart начинает диалог удаления - показывает список занятий.
// Если занятий нет, диалог не начинается.
func (h *Handlers) HandleDeleteStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	items, err := h.scheduleService.GetUserSchedule(ctx, user.ID, "")
	if err != nil {
		h.logger.Error("Failed to get schedule for deletion",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	if len(items) == 0 {
		h.sendWithMainMenu(ctx, b, update.Message.Chat.ID, "📭 У вас нет занятий для удаления")
		return
	}

	builder := keyboard.NewBuilder()
	for i := range items {
		item := &items[i]
		builder.Row(keyboard.Button(
			formatting.FormatItemButtonLabel(item),
			fmt.Sprintf("delete_select:%d", item.ID),
		))
	}
	builder.Row(keyboard.Button("❌ Отмена", "flow_cancel"))

	h.stateManager.SetState(update.Message.From.ID, state.StateDeleteChoosingItem)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "🗑️ Выберите занятие для удаления:",
		ReplyMarkup: builder.Build(),
	})
}
