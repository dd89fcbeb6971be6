package handler

import (
	"context"
	
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"
	
	v1 "github.com/Wenrh2004/playground/api/v1"
	"github.com/Wenrh2004/playground/internal/compile/adapter/convert"
	"github.com/Wenrh2004/playground/internal/compile/domain/service"
	"github.com/Wenrh2004/playground/pkg/adapter"
)

type SettingsHandler struct {
	*adapter.Service
	settings *service.SettingsDomainService
}

func NewSettingsHandler(srv *adapter.Service, settings *service.SettingsDomainService) *SettingsHandler {
	return &SettingsHandler{
		Service:  srv,
		settings: settings,
	}
}

// Get godoc
//	@Summary		获取编辑器设置
//	@Tags			设置
//	@Produce		json
//	@Param			X-User-ID	header		string				false	"用户ID"
//	@Success		200			{object}	v1.SettingsResponse	"成功"
//	@Failure		500			{object}	v1.Response			"服务器内部错误"
//	@Router			/settings [get]
func (h *SettingsHandler) Get(ctx context.Context, c *app.RequestContext) {
	settings, err := h.settings.Get(ctx, userID(c))
	if err != nil {
		h.Logger.WithContext(ctx).Error("[SettingsHandler.Get]load settings failed", zap.Error(err))
		v1.HandlerError(c, consts.StatusInternalServerError, v1.ErrInternalServerError)
		return
	}
	v1.HandlerSuccess(c, convert.SettingsResponseConvert(settings))
}

// Put godoc
//	@Summary		保存编辑器设置
//	@Tags			设置
//	@Accept			json
//	@Produce		json
//	@Param			request		body		v1.SettingsRequest	true	"设置"
//	@Param			X-User-ID	header		string				false	"用户ID"
//	@Success		200			{object}	v1.SettingsResponse	"成功"
//	@Failure		400			{object}	v1.Response			"请求参数错误"
//	@Failure		500			{object}	v1.Response			"服务器内部错误"
//	@Router			/settings [put]
func (h *SettingsHandler) Put(ctx context.Context, c *app.RequestContext) {
	var req v1.SettingsRequest
	if err := c.BindAndValidate(&req); err != nil {
		h.Logger.WithContext(ctx).Error("[SettingsHandler.Put]invalid request", zap.Error(err))
		v1.HandlerError(c, consts.StatusBadRequest, v1.ErrBadRequest)
		return
	}
	
	settings, err := h.settings.Save(ctx, userID(c), convert.SettingsConvert(&req))
	if err != nil {
		h.Logger.WithContext(ctx).Error("[SettingsHandler.Put]save settings failed", zap.Error(err))
		v1.HandlerError(c, consts.StatusInternalServerError, v1.ErrInternalServerError)
		return
	}
	v1.HandlerSuccess(c, convert.SettingsResponseConvert(settings))
}
