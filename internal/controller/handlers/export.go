package handlers

import (
	"bytes"
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleExport обрабатывает команду /export - отправляет расписание картинкой
func (h *Handlers) HandleExport(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	items, err := h.scheduleService.GetUserSchedule(ctx, user.ID, "")
	if err != nil {
		h.logger.Error("Failed to get schedule for export",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	if len(items) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "📭 У вас пока нет занятий в расписании")
		return
	}

	image, err := common.GenerateWeekImage(items)
	if err != nil {
		h.logger.Error("Failed to render week image",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось построить изображение расписания")
		return
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: update.Message.Chat.ID,
		Photo: &models.InputFileUpload{
			Filename: "schedule.png",
			Data:     bytes.NewReader(image),
		},
		Caption: "📤 Ваше расписание на неделю",
	})
	if err != nil {
		h.logger.Error("Failed to send week image",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}
