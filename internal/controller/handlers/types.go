package handlers

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService     *service.UserService
	scheduleService *service.ScheduleService
	stateManager    *state.Manager
	logger          *zap.Logger

	// Таблица переходов: текущий шаг диалога -> обработчик ввода.
	// Ввод, не подходящий шагу, не продвигает диалог.
	dialogSteps map[state.UserState]func(ctx context.Context, b *bot.Bot, update *models.Update)
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	h := &Handlers{
		userService:     userService,
		scheduleService: scheduleService,
		stateManager:    stateManager,
		logger:          logger,
	}

	h.dialogSteps = map[state.UserState]func(ctx context.Context, b *bot.Bot, update *models.Update){
		state.StateCreateDay:         h.handleCreateDayStep,
		state.StateCreateTimeStart:   h.handleCreateTimeStartStep,
		state.StateCreateTimeEnd:     h.handleCreateTimeEndStep,
		state.StateCreateSubject:     h.handleCreateSubjectStep,
		state.StateCreateDescription: h.handleCreateDescriptionStep,
		state.StateEditEnteringValue: h.handleEditValueStep,
	}

	return h
}
