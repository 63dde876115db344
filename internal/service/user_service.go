package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/apiclient"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"go.uber.org/zap"
)

type UserService struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func NewUserService(api *apiclient.Client, logger *zap.Logger) *UserService {
	return &UserService{
		api:    api,
		logger: logger,
	}
}

// Register регистрирует пользователя, если его ещё нет.
// Сначала ищем по Telegram ID, при 404 создаём нового.
func (s *UserService) Register(ctx context.Context, telegramID int64, username, firstName string) (*model.User, error) {
	existingUser, err := s.api.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	if existingUser != nil {
		s.logger.Info("User found",
			zap.Int64("user_id", existingUser.ID),
			zap.Int64("telegram_id", telegramID))
		return existingUser, nil
	}

	user, err := s.api.CreateUser(ctx, telegramID, username, firstName)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", telegramID),
		zap.String("username", username),
	)

	return user, nil
}

// GetByTelegramID получает пользователя по Telegram ID.
// Возвращает (nil, nil) если пользователь не зарегистрирован.
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.api.GetUserByTelegramID(ctx, telegramID)
}
