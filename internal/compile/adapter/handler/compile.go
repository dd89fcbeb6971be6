package handler

import (
	"context"
	"time"
	
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"
	
	v1 "github.com/Wenrh2004/playground/api/v1"
	"github.com/Wenrh2004/playground/internal/compile/adapter/convert"
	"github.com/Wenrh2004/playground/internal/compile/domain/service"
	"github.com/Wenrh2004/playground/pkg/adapter"
)

type CompileHandler struct {
	*adapter.Service
	compiler *service.CompileDomainService
}

func NewCompileHandler(srv *adapter.Service, compiler *service.CompileDomainService) *CompileHandler {
	return &CompileHandler{
		Service:  srv,
		compiler: compiler,
	}
}

// Compile godoc
//	@Summary		编译运行
//	@Description	同步模拟编译并运行代码，模拟失败同样返回200
//	@Tags			编译
//	@Accept			json
//	@Produce		json
//	@Param			request	body		v1.CompileRequest	true	"编译请求参数"
//	@Success		200		{object}	v1.CompileResponse	"成功"
//	@Failure		400		{object}	v1.Response			"请求参数错误"
//	@Router			/compile [post]
func (h *CompileHandler) Compile(ctx context.Context, c *app.RequestContext) {
	var req v1.CompileRequest
	if err := c.BindAndValidate(&req); err != nil {
		h.Logger.WithContext(ctx).Error("[CompileHandler.Compile]invalid request", zap.Error(err))
		v1.HandlerError(c, consts.StatusBadRequest, v1.ErrBadRequest)
		return
	}
	
	request := convert.CompileRequestConvert(&req)
	result := h.compiler.Compile(ctx, request)
	v1.HandlerSuccess(c, convert.CompileResponseConvert(request, result, time.Now()))
}

// Languages godoc
//	@Summary		支持的语言
//	@Description	列出支持的语言及其模板代码
//	@Tags			编译
//	@Produce		json
//	@Success		200	{object}	v1.LanguagesResponse	"成功"
//	@Router			/languages [get]
func (h *CompileHandler) Languages(ctx context.Context, c *app.RequestContext) {
	v1.HandlerSuccess(c, convert.LanguagesConvert())
}
