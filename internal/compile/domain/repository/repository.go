package repository

import (
	"context"
	"errors"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/pkg/page"
)

var ErrNotFound = errors.New("[repository]record not found")

type TaskRepository interface {
	CreateTask(ctx context.Context, task *aggregate.Task) error
	UpdateTask(ctx context.Context, task *aggregate.Task) error
	GetTask(ctx context.Context, taskID string) (*aggregate.Task, error)
	ListTasks(ctx context.Context, userID string, p *page.Page) ([]*aggregate.Task, int64, error)
}

type SettingsRepository interface {
	GetSettings(ctx context.Context, userID string) (*aggregate.UserSettings, error)
	SaveSettings(ctx context.Context, settings *aggregate.UserSettings) error
}
