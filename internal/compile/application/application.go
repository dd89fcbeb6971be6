package application

import (
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/spf13/viper"
	
	"github.com/Wenrh2004/playground/internal/compile/adapter/handler"
	"github.com/Wenrh2004/playground/pkg/application/server/http"
	"github.com/Wenrh2004/playground/pkg/log"
)

func NewCompileApplication(
	conf *viper.Viper,
	logger *log.Logger,
	compile *handler.CompileHandler,
	task *handler.TaskHandler,
	settings *handler.SettingsHandler,
) *http.Server {
	h := http.NewServer(conf, logger)
	RegisterRoutes(h.Group("/v1"), compile, task, settings)
	return h
}

func RegisterRoutes(v1 *route.RouterGroup, compile *handler.CompileHandler, task *handler.TaskHandler, settings *handler.SettingsHandler) {
	v1.POST("/compile", compile.Compile)
	v1.GET("/languages", compile.Languages)
	
	tasks := v1.Group("/task")
	tasks.POST("/:submit_id", task.Submit)
	tasks.GET("/:task_id", task.GetResult)
	v1.GET("/tasks", task.List)
	
	v1.GET("/settings", settings.Get)
	v1.PUT("/settings", settings.Put)
}
