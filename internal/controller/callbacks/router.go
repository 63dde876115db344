package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Callback Data Patterns
// ========================

// Диалог удаления
const (
	DeleteSelect  = "delete_select:"  // delete_select:123
	DeleteConfirm = "delete_confirm:" // delete_confirm:123
)

// Диалог редактирования
const (
	EditSelect  = "edit_select:" // edit_select:123
	EditField   = "edit_field:"  // edit_field:subject
	EditConfirm = "edit_confirm"
)

// Inline кнопки на сообщении занятия (вход в диалог мимо выбора из списка)
const (
	ItemEdit          = "item_edit:"           // item_edit:123
	ItemDelete        = "item_delete:"         // item_delete:123
	ItemDeleteConfirm = "item_delete_confirm:" // item_delete_confirm:123
)

// Отмена любого диалога
const FlowCancel = "flow_cancel"

// Handler обрабатывает callback query от inline кнопок
type Handler struct {
	deps *callbacktypes.Handler
}

// NewHandler создаёт callback handler
func NewHandler(deps *callbacktypes.Handler) *Handler {
	return &Handler{deps: deps}
}

// HandleCallbackQuery - единая точка входа для всех callback query
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	Route(ctx, b, update.CallbackQuery, h.deps)
}

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	switch {
	// ===== Общее =====
	case data == FlowCancel:
		HandleFlowCancel(ctx, b, callback, h)

	// ===== Удаление =====
	case strings.HasPrefix(data, DeleteSelect):
		HandleDeleteSelect(ctx, b, callback, h)
	case strings.HasPrefix(data, DeleteConfirm):
		HandleDeleteConfirm(ctx, b, callback, h)

	// ===== Редактирование =====
	case strings.HasPrefix(data, EditSelect):
		HandleEditSelect(ctx, b, callback, h)
	case strings.HasPrefix(data, EditField):
		HandleEditField(ctx, b, callback, h)
	case data == EditConfirm:
		HandleEditConfirm(ctx, b, callback, h)

	// ===== Кнопки на сообщении занятия =====
	case strings.HasPrefix(data, ItemEdit):
		HandleItemEdit(ctx, b, callback, h)
	case strings.HasPrefix(data, ItemDeleteConfirm):
		HandleItemDeleteConfirm(ctx, b, callback, h)
	case strings.HasPrefix(data, ItemDelete):
		HandleItemDelete(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}

// HandleFlowCancel отменяет любой активный диалог
func HandleFlowCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	h.StateManager.ClearState(callback.From.ID)

	msg := common.GetMessageFromCallback(callback)
	if msg != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   "❌ Действие отменено",
		})
	}
	common.AnswerCallback(ctx, b, callback.ID, "")
}
