package service

import (
	"context"
	"errors"
	"sync"
	"time"
	
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
	"github.com/Wenrh2004/playground/internal/compile/domain/repository"
	"github.com/Wenrh2004/playground/pkg/cache"
	"github.com/Wenrh2004/playground/pkg/domain"
	"github.com/Wenrh2004/playground/pkg/page"
)

var (
	ErrTaskLimit    = errors.New("[TaskDomainService.Submit]user task limit reached")
	ErrTaskNotFound = errors.New("[TaskDomainService.GetResult]task not found")
)

// TaskDomainService 异步编译任务
type TaskDomainService struct {
	*domain.Service
	pool           *ants.Pool
	compiler       *CompileDomainService
	taskStore      repository.TaskRepository
	resultCache    cache.MultiCache[*aggregate.Task]
	userTaskCounts map[string]int
	maxTaskPerUser int
	mu             sync.Mutex
}

// NewTaskDomainService 初始化任务服务，返回的 cleanup 释放协程池
func NewTaskDomainService(
	conf *viper.Viper,
	srv *domain.Service,
	compiler *CompileDomainService,
	taskRepository repository.TaskRepository,
	resultCache cache.MultiCache[*aggregate.Task],
) (*TaskDomainService, func(), error) {
	p, err := ants.NewPool(conf.GetInt("app.task.pool_num"))
	if err != nil {
		return nil, nil, err
	}
	s := &TaskDomainService{
		Service:        srv,
		pool:           p,
		compiler:       compiler,
		taskStore:      taskRepository,
		resultCache:    resultCache,
		userTaskCounts: make(map[string]int),
		maxTaskPerUser: conf.GetInt("app.task.user_max_task"),
	}
	return s, func() {
		if err := p.ReleaseTimeout(10 * time.Second); err != nil {
			srv.Logger.Error("[TaskDomainService]pool release timeout", zap.Error(err))
		}
	}, nil
}

// Submit 持久化任务并投递到协程池，立即返回任务ID
func (s *TaskDomainService) Submit(ctx context.Context, task *aggregate.Task) (string, error) {
	id, err := s.Sid.GenString()
	if err != nil {
		return "", err
	}
	task.ID = id
	task.Status = *vo.Pending
	task.Result = nil
	
	// 限流检测
	if !s.acquireUserSlot(task.UserID) {
		return "", ErrTaskLimit
	}
	
	if err := s.Tx.Transaction(ctx, func(ctx context.Context) error {
		return s.taskStore.CreateTask(ctx, task)
	}); err != nil {
		s.releaseUserSlot(task.UserID)
		s.Logger.WithContext(ctx).Error("[TaskDomainService.Submit]failed to create task", zap.Error(err))
		return "", err
	}
	
	// 任务在请求结束后继续执行
	runCtx := context.WithoutCancel(ctx)
	job := *task
	if err := s.pool.Submit(func() {
		defer s.releaseUserSlot(job.UserID)
		s.run(runCtx, &job)
	}); err != nil {
		s.releaseUserSlot(task.UserID)
		return "", err
	}
	
	return task.ID, nil
}

func (s *TaskDomainService) run(ctx context.Context, task *aggregate.Task) {
	task.Finish(s.compiler.Compile(ctx, &task.Request))
	if err := s.taskStore.UpdateTask(ctx, task); err != nil {
		s.Logger.WithContext(ctx).Error("[TaskDomainService.run]failed to update task", zap.String("task_id", task.ID), zap.Error(err))
		return
	}
	s.Logger.WithContext(ctx).Info("[TaskDomainService.run]task finished",
		zap.String("task_id", task.ID),
		zap.String("status", task.Status.GetMsg()),
	)
}

// unfinishedTask 未结束的任务不进入缓存，经由错误带回
type unfinishedTask struct {
	task *aggregate.Task
}

func (u *unfinishedTask) Error() string {
	return "[TaskDomainService.GetResult]task " + u.task.ID + " not finished"
}

// GetResult 获取任务结果，只缓存已结束的任务；只有提交者本人可以查看
func (s *TaskDomainService) GetResult(ctx context.Context, userID, taskID string) (*aggregate.Task, error) {
	task, err := s.resultCache.Get(ctx, taskID)
	if err != nil || task == nil {
		task, err = s.resultCache.GetAndSingleSet(ctx, taskID, 0, func() (*aggregate.Task, error) {
			t, err := s.taskStore.GetTask(ctx, taskID)
			if err != nil {
				return nil, err
			}
			if !t.Status.IsFinished() {
				return nil, &unfinishedTask{task: t}
			}
			return t, nil
		})
	}
	if err != nil {
		var unfinished *unfinishedTask
		switch {
		case errors.As(err, &unfinished):
			task = unfinished.task
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrTaskNotFound
		default:
			s.Logger.WithContext(ctx).Error("[TaskDomainService.GetResult]failed to load task", zap.String("task_id", taskID), zap.Error(err))
			return nil, err
		}
	}
	
	if task.UserID != userID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// ListTasks 分页查询用户的任务
func (s *TaskDomainService) ListTasks(ctx context.Context, userID string, p *page.Page) ([]*aggregate.Task, int64, error) {
	return s.taskStore.ListTasks(ctx, userID, p.Normalize())
}

// ----------- 用户限流部分 -----------

func (s *TaskDomainService) acquireUserSlot(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	count := s.userTaskCounts[userID]
	if s.maxTaskPerUser > 0 && count >= s.maxTaskPerUser {
		return false
	}
	s.userTaskCounts[userID] = count + 1
	return true
}

func (s *TaskDomainService) releaseUserSlot(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	if count, ok := s.userTaskCounts[userID]; ok {
		if count <= 1 {
			delete(s.userTaskCounts, userID)
		} else {
			s.userTaskCounts[userID] = count - 1
		}
	}
}
