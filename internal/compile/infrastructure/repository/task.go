package repository

import (
	"context"
	"errors"
	"fmt"
	
	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
	"github.com/Wenrh2004/playground/internal/compile/domain/repository"
	"github.com/Wenrh2004/playground/internal/compile/infrastructure/repository/model"
	"github.com/Wenrh2004/playground/pkg/page"
)

type TaskRepository struct {
	*Repository
}

func NewTaskRepository(r *Repository) repository.TaskRepository {
	return &TaskRepository{Repository: r}
}

func (t *TaskRepository) CreateTask(ctx context.Context, task *aggregate.Task) error {
	info, err := taskToModel(task)
	if err != nil {
		return err
	}
	if err := t.DB(ctx).Create(info).Error; err != nil {
		return fmt.Errorf("[TaskRepository.CreateTask]%w", err)
	}
	task.CreatedAt = info.CreatedAt
	task.UpdatedAt = info.UpdatedAt
	return nil
}

// UpdateTask stores the final status and result.
func (t *TaskRepository) UpdateTask(ctx context.Context, task *aggregate.Task) error {
	if !task.Status.IsFinished() {
		return errors.New("[TaskRepository.UpdateTask]task status is not set")
	}
	info, err := taskToModel(task)
	if err != nil {
		return err
	}
	res := t.DB(ctx).Model(&model.TaskInfo{}).
		Where("id = ?", task.ID).
		Select("status", "result", "updated_at").
		Updates(info)
	if res.Error != nil {
		return fmt.Errorf("[TaskRepository.UpdateTask]%w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (t *TaskRepository) GetTask(ctx context.Context, taskID string) (*aggregate.Task, error) {
	var info model.TaskInfo
	if err := t.DB(ctx).Where("id = ?", taskID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("[TaskRepository.GetTask]%w", err)
	}
	return taskFromModel(&info)
}

// ListTasks returns the newest tasks of a user first.
func (t *TaskRepository) ListTasks(ctx context.Context, userID string, p *page.Page) ([]*aggregate.Task, int64, error) {
	p = p.Normalize()
	var (
		total int64
		infos []*model.TaskInfo
	)
	q := t.DB(ctx).Model(&model.TaskInfo{}).Where("user_id = ?", userID).Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("[TaskRepository.ListTasks]%w", err)
	}
	if err := q.Order("created_at DESC").Order("id DESC").Offset(p.Offset).Limit(p.Limit).Find(&infos).Error; err != nil {
		return nil, 0, fmt.Errorf("[TaskRepository.ListTasks]%w", err)
	}
	
	tasks := make([]*aggregate.Task, 0, len(infos))
	for _, info := range infos {
		task, err := taskFromModel(info)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, task)
	}
	return tasks, total, nil
}

func taskToModel(task *aggregate.Task) (*model.TaskInfo, error) {
	settings, err := sonic.MarshalString(task.Request.Settings)
	if err != nil {
		return nil, fmt.Errorf("[TaskRepository]marshal settings: %w", err)
	}
	info := &model.TaskInfo{
		ID:       task.ID,
		SubmitID: task.SubmitID,
		UserID:   task.UserID,
		Language: task.Request.Language.String(),
		Code:     task.Request.Code,
		Settings: settings,
		Status:   task.Status.GetCode(),
	}
	if task.Result != nil {
		result, err := sonic.MarshalString(task.Result)
		if err != nil {
			return nil, fmt.Errorf("[TaskRepository]marshal result: %w", err)
		}
		info.Result = &result
	}
	return info, nil
}

func taskFromModel(info *model.TaskInfo) (*aggregate.Task, error) {
	status := vo.GetStatusByCode(info.Status)
	if status == nil {
		return nil, fmt.Errorf("[TaskRepository]unknown status %d for task %s", info.Status, info.ID)
	}
	task := &aggregate.Task{
		ID:       info.ID,
		SubmitID: info.SubmitID,
		UserID:   info.UserID,
		Request: aggregate.Request{
			Code:     info.Code,
			Language: vo.Language(info.Language),
		},
		Status:    *status,
		CreatedAt: info.CreatedAt,
		UpdatedAt: info.UpdatedAt,
	}
	if info.Settings != "" {
		if err := sonic.UnmarshalString(info.Settings, &task.Request.Settings); err != nil {
			return nil, fmt.Errorf("[TaskRepository]unmarshal settings: %w", err)
		}
	}
	if info.Result != nil {
		task.Result = aggregate.NewResult()
		if err := sonic.UnmarshalString(*info.Result, task.Result); err != nil {
			return nil, fmt.Errorf("[TaskRepository]unmarshal result: %w", err)
		}
	}
	return task, nil
}
