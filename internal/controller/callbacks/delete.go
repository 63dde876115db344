package callbacks

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleDeleteSelect - пользователь выбрал занятие, запрашиваем подтверждение
func HandleDeleteSelect(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	itemID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse item ID in delete_select",
			zap.Error(err), zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	telegramID := callback.From.ID
	h.StateManager.SetData(telegramID, state.KeyItemID, itemID)
	h.StateManager.SetState(telegramID, state.StateDeleteConfirm)

	confirmKeyboard := keyboard.NewBuilder().
		Row(
			keyboard.Button("✅ Да, удалить", fmt.Sprintf("%s%d", DeleteConfirm, itemID)),
			keyboard.Button("❌ Нет, отменить", FlowCancel),
		).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "❓ Вы уверены, что хотите удалить это занятие?",
		ReplyMarkup: confirmKeyboard,
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleDeleteConfirm - финальное удаление занятия.
// Успех и ошибка backend одинаково завершают диалог.
func HandleDeleteConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	itemID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse item ID in delete_confirm",
			zap.Error(err), zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	telegramID := callback.From.ID

	deleteErr := h.ScheduleService.DeleteItem(ctx, itemID)
	h.StateManager.ClearState(telegramID)

	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	if deleteErr != nil {
		h.Logger.Error("Failed to delete schedule item",
			zap.Int64("item_id", itemID),
			zap.Error(deleteErr))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        common.ErrorMessage(deleteErr),
			ReplyMarkup: keyboard.MainMenu(),
		})
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	// Убираем сообщение с кнопками подтверждения
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "✅ Занятие успешно удалено!",
		ReplyMarkup: keyboard.MainMenu(),
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleItemDelete - удаление через inline кнопку на сообщении занятия
func HandleItemDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	itemID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse item ID in item_delete",
			zap.Error(err), zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	confirmKeyboard := keyboard.NewBuilder().
		Row(
			keyboard.Button("✅ Да, удалить", fmt.Sprintf("%s%d", ItemDeleteConfirm, itemID)),
			keyboard.Button("❌ Отмена", FlowCancel),
		).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "❓ Удалить это занятие?",
		ReplyMarkup: confirmKeyboard,
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleItemDeleteConfirm - подтверждение удаления из inline кнопки
func HandleItemDeleteConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	itemID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse item ID in item_delete_confirm",
			zap.Error(err), zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	msg := common.GetMessageFromCallback(callback)

	deleteErr := h.ScheduleService.DeleteItem(ctx, itemID)

	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	if deleteErr != nil {
		h.Logger.Error("Failed to delete schedule item",
			zap.Int64("item_id", itemID),
			zap.Error(deleteErr))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        common.ErrorMessage(deleteErr),
			ReplyMarkup: keyboard.MainMenu(),
		})
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	// Убираем сообщение с кнопками подтверждения
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "✅ Занятие удалено!",
		ReplyMarkup: keyboard.MainMenu(),
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}
