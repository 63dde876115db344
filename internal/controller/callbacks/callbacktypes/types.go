package callbacktypes

import (
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"go.uber.org/zap"
)

// StateManager интерфейс для управления состоянием диалогов
type StateManager interface {
	GetState(telegramID int64) state.UserState
	SetState(telegramID int64, s state.UserState)
	GetData(telegramID int64, key string) (interface{}, bool)
	SetData(telegramID int64, key string, value interface{})
	GetAllData(telegramID int64) map[string]interface{}
	ClearState(telegramID int64)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	UserService     *service.UserService
	ScheduleService *service.ScheduleService
	StateManager    StateManager
	Logger          *zap.Logger
}
