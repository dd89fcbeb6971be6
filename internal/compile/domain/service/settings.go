package service

import (
	"context"
	"errors"
	"time"
	
	"go.uber.org/zap"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/repository"
	"github.com/Wenrh2004/playground/pkg/domain"
)

// SettingsDomainService remembers editor settings per user. The compiler
// never reads them; clients send settings with every request.
type SettingsDomainService struct {
	*domain.Service
	store repository.SettingsRepository
}

func NewSettingsDomainService(srv *domain.Service, store repository.SettingsRepository) *SettingsDomainService {
	return &SettingsDomainService{
		Service: srv,
		store:   store,
	}
}

// Get falls back to the defaults for users who never saved anything.
func (s *SettingsDomainService) Get(ctx context.Context, userID string) (*aggregate.UserSettings, error) {
	settings, err := s.store.GetSettings(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &aggregate.UserSettings{UserID: userID, Settings: aggregate.DefaultSettings()}, nil
	}
	if err != nil {
		s.Logger.WithContext(ctx).Error("[SettingsDomainService.Get]failed to load settings", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *SettingsDomainService) Save(ctx context.Context, userID string, settings aggregate.Settings) (*aggregate.UserSettings, error) {
	us := &aggregate.UserSettings{
		UserID:    userID,
		Settings:  settings.Normalize(),
		UpdatedAt: time.Now(),
	}
	if err := s.store.SaveSettings(ctx, us); err != nil {
		s.Logger.WithContext(ctx).Error("[SettingsDomainService.Save]failed to save settings", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return us, nil
}
