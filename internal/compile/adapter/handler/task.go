package handler

import (
	"context"
	"errors"
	"strings"
	
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	
	v1 "github.com/Wenrh2004/playground/api/v1"
	"github.com/Wenrh2004/playground/internal/compile/adapter/convert"
	"github.com/Wenrh2004/playground/internal/compile/domain/service"
	"github.com/Wenrh2004/playground/pkg/adapter"
	"github.com/Wenrh2004/playground/pkg/page"
)

type TaskHandler struct {
	*adapter.Service
	*service.TaskDomainService
	sf singleflight.Group
}

func NewTaskHandler(srv *adapter.Service, domain *service.TaskDomainService) *TaskHandler {
	return &TaskHandler{
		Service:           srv,
		TaskDomainService: domain,
		sf:                singleflight.Group{},
	}
}

// Submit godoc
//	@Summary		提交任务
//	@Description	异步提交编译任务
//	@Tags			任务管理
//	@Accept			json
//	@Produce		json
//	@Param			request		body		v1.TaskSubmitRequest	true	"任务提交请求参数"
//	@Param			submit_id	path		string					true	"提交ID"
//	@Param			X-User-ID	header		string					false	"用户ID"
//	@Success		200			{object}	v1.TaskSubmitResponse	"成功"
//	@Failure		400			{object}	v1.Response				"请求参数错误"
//	@Failure		429			{object}	v1.Response				"任务数超限"
//	@Failure		500			{object}	v1.Response				"服务器内部错误"
//	@Router			/task/{submit_id} [post]
func (t *TaskHandler) Submit(ctx context.Context, c *app.RequestContext) {
	var req v1.TaskSubmitRequest
	if err := c.BindAndValidate(&req); err != nil {
		t.Logger.WithContext(ctx).Error("[TaskHandler.Submit]invalid request", zap.Error(err))
		v1.HandlerError(c, consts.StatusBadRequest, v1.ErrBadRequest)
		return
	}
	
	// Get the submitted ID from the URL parameter
	submitID := c.Param("submit_id")
	if submitID == "" {
		t.Logger.WithContext(ctx).Error("[TaskHandler.Submit]invalid submit_id", zap.String("submit_id", submitID))
		v1.HandlerError(c, consts.StatusBadRequest, v1.ErrBadRequest)
		return
	}
	user := userID(c)
	
	// Single flight to prevent duplicate submissions
	key := strings.Join([]string{user, submitID}, ":")
	taskID, err, _ := t.sf.Do(key, func() (interface{}, error) {
		return t.TaskDomainService.Submit(ctx, convert.TaskSubmitRequestConvert(&req, user, submitID))
	})
	if err != nil {
		if errors.Is(err, service.ErrTaskLimit) {
			t.Logger.WithContext(ctx).Warn("[TaskHandler.Submit]task limit exceeded", zap.String("user_id", user))
			v1.HandlerError(c, consts.StatusTooManyRequests, v1.ErrLimitExceeded)
			return
		}
		t.Logger.WithContext(ctx).Error("[TaskHandler.Submit]submit task failed", zap.Error(err))
		v1.HandlerError(c, consts.StatusInternalServerError, v1.ErrInternalServerError)
		return
	}
	
	v1.HandlerSuccess(c, &v1.TaskSubmitResponseBody{
		TaskID: taskID.(string),
	})
}

// GetResult godoc
//	@Summary		获取执行结果
//	@Description	获取当前用户已提交的任务执行结果，他人的任务视为不存在
//	@Tags			任务管理
//	@Produce		json
//	@Param			task_id		path		string					true	"任务ID"
//	@Param			X-User-ID	header		string					false	"用户ID"
//	@Success		200			{object}	v1.TaskResultResponse	"成功"
//	@Failure		404			{object}	v1.Response				"任务不存在"
//	@Failure		500			{object}	v1.Response				"服务器内部错误"
//	@Router			/task/{task_id} [get]
func (t *TaskHandler) GetResult(ctx context.Context, c *app.RequestContext) {
	taskID := c.Param("task_id")
	result, err := t.TaskDomainService.GetResult(ctx, userID(c), taskID)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			t.Logger.WithContext(ctx).Warn("[TaskHandler.GetResult]task not found", zap.String("task_id", taskID))
			v1.HandlerError(c, consts.StatusNotFound, v1.ErrNotFound)
			return
		}
		t.Logger.WithContext(ctx).Error("[TaskHandler.GetResult]get task failed", zap.String("task_id", taskID), zap.Error(err))
		v1.HandlerError(c, consts.StatusInternalServerError, v1.ErrInternalServerError)
		return
	}
	v1.HandlerSuccess(c, convert.TaskResultResponseConvert(result))
}

// List godoc
//	@Summary		任务列表
//	@Description	分页查询当前用户的任务
//	@Tags			任务管理
//	@Produce		json
//	@Param			offset		query		int					false	"偏移"
//	@Param			limit		query		int					false	"数量"
//	@Param			X-User-ID	header		string				false	"用户ID"
//	@Success		200			{object}	v1.TaskListResponse	"成功"
//	@Failure		400			{object}	v1.Response			"请求参数错误"
//	@Router			/tasks [get]
func (t *TaskHandler) List(ctx context.Context, c *app.RequestContext) {
	var p page.Page
	if err := c.BindAndValidate(&p); err != nil {
		t.Logger.WithContext(ctx).Error("[TaskHandler.List]invalid page", zap.Error(err))
		v1.HandlerError(c, consts.StatusBadRequest, v1.ErrBadRequest)
		return
	}
	
	tasks, total, err := t.TaskDomainService.ListTasks(ctx, userID(c), &p)
	if err != nil {
		t.Logger.WithContext(ctx).Error("[TaskHandler.List]list tasks failed", zap.Error(err))
		v1.HandlerError(c, consts.StatusInternalServerError, v1.ErrInternalServerError)
		return
	}
	v1.HandlerSuccess(c, convert.TaskListResponseConvert(tasks, total))
}
