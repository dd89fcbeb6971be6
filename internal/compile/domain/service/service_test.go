package service

import (
	"context"
	"sync"
	
	"github.com/spf13/viper"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/repository"
	"github.com/Wenrh2004/playground/internal/compile/infrastructure/simulator"
	"github.com/Wenrh2004/playground/pkg/domain"
	"github.com/Wenrh2004/playground/pkg/log"
	"github.com/Wenrh2004/playground/pkg/page"
	"github.com/Wenrh2004/playground/pkg/sid"
)

type noTx struct{}

func (noTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newDomainService() *domain.Service {
	return domain.NewService(log.NewNop(), sid.NewSid(), noTx{})
}

func newCompileService(conf *viper.Viper) *CompileDomainService {
	return NewCompileDomainService(newDomainService(), NewValidator(conf), simulator.NewRegistry(conf, log.NewNop()))
}

// memTaskStore is an in-memory repository.TaskRepository.
type memTaskStore struct {
	mu      sync.Mutex
	tasks   map[string]aggregate.Task
	updated chan string
	gets    int
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: map[string]aggregate.Task{}, updated: make(chan string, 16)}
}

func (m *memTaskStore) CreateTask(_ context.Context, task *aggregate.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[task.ID] = *task
	return nil
}

func (m *memTaskStore) UpdateTask(_ context.Context, task *aggregate.Task) error {
	m.mu.Lock()
	m.tasks[task.ID] = *task
	m.mu.Unlock()
	m.updated <- task.ID
	return nil
}

func (m *memTaskStore) GetTask(_ context.Context, taskID string) (*aggregate.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	task, ok := m.tasks[taskID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &task, nil
}

func (m *memTaskStore) ListTasks(_ context.Context, userID string, p *page.Page) ([]*aggregate.Task, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*aggregate.Task
	for _, task := range m.tasks {
		if task.UserID == userID {
			task := task
			out = append(out, &task)
		}
	}
	total := int64(len(out))
	if p.Offset >= len(out) {
		return nil, total, nil
	}
	out = out[p.Offset:]
	if len(out) > p.Limit {
		out = out[:p.Limit]
	}
	return out, total, nil
}

func (m *memTaskStore) getCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets
}

type memSettingsStore struct {
	mu   sync.Mutex
	data map[string]aggregate.UserSettings
}

func (m *memSettingsStore) GetSettings(_ context.Context, userID string) (*aggregate.UserSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.data[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (m *memSettingsStore) SaveSettings(_ context.Context, settings *aggregate.UserSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[settings.UserID] = *settings
	return nil
}
