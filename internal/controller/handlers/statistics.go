package handlers

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStatistics обрабатывает команду /statistics
func (h *Handlers) HandleStatistics(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	stats, err := h.scheduleService.GetStatistics(ctx, user.ID)
	if err != nil {
		h.logger.Error("Failed to get statistics",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, formatting.FormatStatistics(stats))
}
