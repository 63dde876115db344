package callbacks

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleEditSelect - пользователь выбрал занятие из списка, показываем выбор поля
func HandleEditSelect(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	itemID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse item ID in edit_select",
			zap.Error(err), zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}
	startFieldSelection(ctx, b, callback, h, itemID)
}

// HandleItemEdit - редактирование через inline кнопку на сообщении занятия
func HandleItemEdit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	itemID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse item ID in item_edit",
			zap.Error(err), zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}
	startFieldSelection(ctx, b, callback, h, itemID)
}

// startFieldSelection запоминает занятие и предлагает поля для изменения
func startFieldSelection(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, itemID int64) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	item, err := h.ScheduleService.GetItemByID(ctx, itemID)
	if err != nil {
		h.Logger.Error("Failed to fetch schedule item",
			zap.Int64("item_id", itemID), zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   common.ErrorMessage(err),
		})
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	if item == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Занятие не найдено")
		return
	}

	telegramID := callback.From.ID
	h.StateManager.SetData(telegramID, state.KeyItemID, itemID)
	h.StateManager.SetState(telegramID, state.StateEditChoosingField)

	fieldKeyboard := keyboard.NewBuilder().
		Row(keyboard.Button("📚 Предмет", EditField+model.FieldSubject)).
		Row(
			keyboard.Button("🕒 Начало", EditField+model.FieldTimeStart),
			keyboard.Button("🕒 Конец", EditField+model.FieldTimeEnd),
		).
		Row(keyboard.Button("📝 Описание", EditField+model.FieldDescription)).
		Row(keyboard.Button("❌ Отмена", FlowCancel)).
		Build()

	text := fmt.Sprintf(
		"✏️ Редактирование занятия:\n\n🕒 %s-%s\n📚 %s\n\nЧто изменить?",
		item.TimeStart, item.TimeEnd, item.Subject,
	)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        text,
		ReplyMarkup: fieldKeyboard,
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleEditField - пользователь выбрал поле, просим новое значение
func HandleEditField(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	field, err := common.ParseSuffixFromCallback(callback.Data)
	if err != nil || !model.IsEditableField(field) {
		h.Logger.Error("Invalid field in edit_field callback",
			zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	telegramID := callback.From.ID
	if _, ok := h.StateManager.GetData(telegramID, state.KeyItemID); !ok {
		h.StateManager.ClearState(telegramID)
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Данные не найдены, начните заново")
		return
	}

	h.StateManager.SetData(telegramID, state.KeyEditField, field)
	h.StateManager.SetState(telegramID, state.StateEditEnteringValue)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        formatting.FieldHint(field),
		ReplyMarkup: keyboard.Cancel(),
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleEditConfirm - подтверждение изменения, отправляем PATCH
func HandleEditConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	telegramID := callback.From.ID

	itemIDRaw, okID := h.StateManager.GetData(telegramID, state.KeyItemID)
	fieldRaw, okField := h.StateManager.GetData(telegramID, state.KeyEditField)
	valueRaw, okValue := h.StateManager.GetData(telegramID, state.KeyEditValue)
	if !okID || !okField || !okValue {
		h.StateManager.ClearState(telegramID)
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Данные не найдены, начните заново")
		return
	}

	itemID, _ := itemIDRaw.(int64)
	field, _ := fieldRaw.(string)
	value, _ := valueRaw.(string)

	updateErr := h.ScheduleService.UpdateItemField(ctx, itemID, field, value)
	h.StateManager.ClearState(telegramID)

	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	if updateErr != nil {
		h.Logger.Error("Failed to update schedule item",
			zap.Int64("item_id", itemID),
			zap.String("field", field),
			zap.Error(updateErr))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        common.ErrorMessage(updateErr),
			ReplyMarkup: keyboard.MainMenu(),
		})
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text: fmt.Sprintf("✅ Изменения сохранены!\n%s: %s",
			formatting.FieldLabel(field), value),
		ReplyMarkup: keyboard.MainMenu(),
	})
	common.AnswerCallback(ctx, b, callback.ID, "")
}
