package repository

import (
	"context"
	"errors"
	"fmt"
	
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
	"github.com/Wenrh2004/playground/internal/compile/domain/repository"
	"github.com/Wenrh2004/playground/internal/compile/infrastructure/repository/model"
)

type SettingsRepository struct {
	*Repository
}

func NewSettingsRepository(r *Repository) repository.SettingsRepository {
	return &SettingsRepository{Repository: r}
}

func (s *SettingsRepository) GetSettings(ctx context.Context, userID string) (*aggregate.UserSettings, error) {
	var m model.UserSettings
	if err := s.DB(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("[SettingsRepository.GetSettings]%w", err)
	}
	return &aggregate.UserSettings{
		UserID: m.UserID,
		Settings: aggregate.Settings{
			Optimization: vo.ParseOptimization(m.Optimization),
			Warnings:     m.Warnings,
			StrictMode:   m.StrictMode,
			DebugInfo:    m.DebugInfo,
			CustomFlags:  m.CustomFlags,
		},
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// SaveSettings inserts or replaces the row of the user.
func (s *SettingsRepository) SaveSettings(ctx context.Context, settings *aggregate.UserSettings) error {
	m := &model.UserSettings{
		UserID:       settings.UserID,
		Optimization: string(settings.Settings.Optimization),
		Warnings:     settings.Settings.Warnings,
		StrictMode:   settings.Settings.StrictMode,
		DebugInfo:    settings.Settings.DebugInfo,
		CustomFlags:  settings.Settings.CustomFlags,
		UpdatedAt:    settings.UpdatedAt,
	}
	if err := s.DB(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(m).Error; err != nil {
		return fmt.Errorf("[SettingsRepository.SaveSettings]%w", err)
	}
	return nil
}
