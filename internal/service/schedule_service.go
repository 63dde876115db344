package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Freeeeeet/timetable_bot/internal/apiclient"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"go.uber.org/zap"
)

type ScheduleService struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func NewScheduleService(api *apiclient.Client, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		api:    api,
		logger: logger,
	}
}

// Statistics - сводка по расписанию пользователя
type Statistics struct {
	Total int
	ByDay map[model.Day]int
}

// GetUserSchedule возвращает занятия пользователя, отсортированные по времени начала.
// day == "" означает все дни недели.
//
// Backend отдаёт только полный список занятий всех пользователей,
// поэтому фильтрация по пользователю и дню делается здесь.
func (s *ScheduleService) GetUserSchedule(ctx context.Context, userID int64, day model.Day) ([]model.ScheduleItem, error) {
	allItems, err := s.api.GetAllSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	items := make([]model.ScheduleItem, 0, len(allItems))
	for _, item := range allItems {
		if item.UserID != userID {
			continue
		}
		if day != "" && model.Day(item.DayOfWeek) != day {
			continue
		}
		items = append(items, item)
	}

	// TimeStart хранится как "HH:MM" с ведущим нулём,
	// поэтому строковое сравнение совпадает с хронологическим
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TimeStart < items[j].TimeStart
	})

	s.logger.Debug("User schedule filtered",
		zap.Int64("user_id", userID),
		zap.String("day", string(day)),
		zap.Int("total", len(allItems)),
		zap.Int("matched", len(items)))

	return items, nil
}

// CreateItem создаёт новое занятие
func (s *ScheduleService) CreateItem(ctx context.Context, userID int64, day model.Day, timeStart, timeEnd, subject, description string) (*model.ScheduleItem, error) {
	item, err := s.api.CreateScheduleItem(ctx, userID, day, timeStart, timeEnd, subject, description)
	if err != nil {
		return nil, fmt.Errorf("create schedule item: %w", err)
	}

	s.logger.Info("Schedule item created",
		zap.Int64("item_id", item.ID),
		zap.Int64("user_id", userID),
		zap.String("day", string(day)),
		zap.String("subject", subject))

	return item, nil
}

// GetItemByID получает занятие по ID. Возвращает (nil, nil) если занятия нет.
func (s *ScheduleService) GetItemByID(ctx context.Context, itemID int64) (*model.ScheduleItem, error) {
	return s.api.GetScheduleItemByID(ctx, itemID)
}

// UpdateItemField обновляет ровно одно поле занятия
func (s *ScheduleService) UpdateItemField(ctx context.Context, itemID int64, field, value string) error {
	if !model.IsEditableField(field) {
		return fmt.Errorf("field %q is not editable", field)
	}

	_, err := s.api.UpdateScheduleItem(ctx, itemID, map[string]string{field: value})
	if err != nil {
		return fmt.Errorf("update schedule item: %w", err)
	}

	s.logger.Info("Schedule item updated",
		zap.Int64("item_id", itemID),
		zap.String("field", field))

	return nil
}

// DeleteItem удаляет занятие
func (s *ScheduleService) DeleteItem(ctx context.Context, itemID int64) error {
	if err := s.api.DeleteScheduleItem(ctx, itemID); err != nil {
		return fmt.Errorf("delete schedule item: %w", err)
	}

	s.logger.Info("Schedule item deleted", zap.Int64("item_id", itemID))
	return nil
}

// GetStatistics считает количество занятий пользователя всего и по дням
func (s *ScheduleService) GetStatistics(ctx context.Context, userID int64) (*Statistics, error) {
	items, err := s.GetUserSchedule(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		Total: len(items),
		ByDay: make(map[model.Day]int),
	}
	for _, item := range items {
		stats.ByDay[model.Day(item.DayOfWeek)]++
	}

	return stats, nil
}
