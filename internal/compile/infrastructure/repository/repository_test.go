package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
	"github.com/Wenrh2004/playground/internal/compile/domain/repository"
	"github.com/Wenrh2004/playground/pkg/log"
	"github.com/Wenrh2004/playground/pkg/page"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	conf := viper.New()
	conf.Set("app.data.db.driver", "sqlite")
	conf.Set("app.data.db.dsn", filepath.Join(t.TempDir(), "test.db"))
	
	logger := log.NewNop()
	db, cleanup, err := NewDB(conf, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return NewRepository(logger, db)
}

func TestNewDBUnknownDriver(t *testing.T) {
	conf := viper.New()
	conf.Set("app.data.db.driver", "oracle")
	
	db, cleanup, err := NewDB(conf, log.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
	assert.Nil(t, db)
	assert.Nil(t, cleanup)
}

func TestTaskRepository(t *testing.T) {
	repo := NewTaskRepository(newTestRepository(t))
	ctx := context.Background()
	
	task := &aggregate.Task{
		ID:       "t1",
		SubmitID: "s1",
		UserID:   "alice",
		Request: aggregate.Request{
			Code:     `console.log("x")`,
			Language: vo.JavaScript,
			Settings: aggregate.Settings{Optimization: vo.OptimizationBasic, Warnings: true, CustomFlags: "-v"},
		},
		Status: *vo.Pending,
	}
	require.NoError(t, repo.CreateTask(ctx, task))
	
	got, err := repo.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, *vo.Pending, got.Status)
	assert.Nil(t, got.Result)
	assert.Equal(t, task.Request, got.Request)
	
	assert.Error(t, repo.UpdateTask(ctx, got))
	
	result := aggregate.NewResult()
	result.Print("x")
	result.ExecutionTime = 3
	task.Finish(result.Seal())
	require.NoError(t, repo.UpdateTask(ctx, task))
	
	got, err = repo.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, *vo.Success, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, []string{"x"}, got.Result.Output)
	assert.Equal(t, []string{}, got.Result.Errors)
	assert.EqualValues(t, 3, got.Result.ExecutionTime)
	
	_, err = repo.GetTask(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	
	missing := &aggregate.Task{ID: "missing", Status: *vo.Failed}
	assert.ErrorIs(t, repo.UpdateTask(ctx, missing), repository.ErrNotFound)
}

func TestTaskRepositoryList(t *testing.T) {
	repo := NewTaskRepository(newTestRepository(t))
	ctx := context.Background()
	
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.CreateTask(ctx, &aggregate.Task{
			ID:      id,
			UserID:  "bob",
			Request: aggregate.Request{Code: "x", Language: vo.Go},
			Status:  *vo.Pending,
		}))
	}
	require.NoError(t, repo.CreateTask(ctx, &aggregate.Task{ID: "d", UserID: "other", Request: aggregate.Request{Code: "x", Language: vo.Go}, Status: *vo.Pending}))
	
	tasks, total, err := repo.ListTasks(ctx, "bob", &page.Page{Offset: 0, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, tasks, 2)
	
	tasks, total, err = repo.ListTasks(ctx, "bob", &page.Page{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, tasks, 1)
}

func TestSettingsRepository(t *testing.T) {
	repo := NewSettingsRepository(newTestRepository(t))
	ctx := context.Background()
	
	_, err := repo.GetSettings(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	
	first := &aggregate.UserSettings{UserID: "alice", Settings: aggregate.Settings{Optimization: vo.OptimizationAggressive, DebugInfo: true}}
	require.NoError(t, repo.SaveSettings(ctx, first))
	second := &aggregate.UserSettings{UserID: "alice", Settings: aggregate.Settings{Optimization: vo.OptimizationNone, Warnings: true}}
	require.NoError(t, repo.SaveSettings(ctx, second))
	
	got, err := repo.GetSettings(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, second.Settings, got.Settings)
}

func TestTransactionRollback(t *testing.T) {
	r := newTestRepository(t)
	repo := NewTaskRepository(r)
	tx := NewTransaction(r)
	ctx := context.Background()
	
	boom := errors.New("boom")
	err := tx.Transaction(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.CreateTask(ctx, &aggregate.Task{ID: "rolled", Request: aggregate.Request{Code: "x", Language: vo.C}, Status: *vo.Pending}))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	
	_, err = repo.GetTask(ctx, "rolled")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
