//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	
	"github.com/Wenrh2004/playground/internal/compile/adapter/handler"
	"github.com/Wenrh2004/playground/internal/compile/application"
	"github.com/Wenrh2004/playground/internal/compile/domain/service"
	"github.com/Wenrh2004/playground/internal/compile/infrastructure/repository"
	"github.com/Wenrh2004/playground/internal/compile/infrastructure/simulator"
	"github.com/Wenrh2004/playground/pkg/adapter"
	"github.com/Wenrh2004/playground/pkg/application/app"
	"github.com/Wenrh2004/playground/pkg/application/server/http"
	"github.com/Wenrh2004/playground/pkg/cache/client"
	"github.com/Wenrh2004/playground/pkg/domain"
	"github.com/Wenrh2004/playground/pkg/log"
	"github.com/Wenrh2004/playground/pkg/sid"
)

var infrastructureSet = wire.NewSet(
	simulator.NewRegistry,
	client.NewClients,
	repository.NewDB,
	repository.NewRepository,
	repository.NewTransaction,
	repository.NewTaskRepository,
	repository.NewSettingsRepository,
	repository.NewTaskCache,
)

var domainSet = wire.NewSet(
	domain.NewService,
	service.NewValidator,
	service.NewCompileDomainService,
	service.NewTaskDomainService,
	service.NewSettingsDomainService,
)

var adapterSet = wire.NewSet(
	adapter.NewService,
	handler.NewCompileHandler,
	handler.NewTaskHandler,
	handler.NewSettingsHandler,
)

var applicationSet = wire.NewSet(
	application.NewCompileApplication,
)

// build App
func newApp(
	httpServer *http.Server,
	conf *viper.Viper,
	logger *log.Logger,
) *app.App {
	return app.NewApp(
		app.WithServer(httpServer),
		app.WithName(conf.GetString("app.name")),
		app.WithLogger(logger),
	)
}

func NewWire(*viper.Viper, *log.Logger) (*app.App, func(), error) {
	panic(wire.Build(
		infrastructureSet,
		domainSet,
		adapterSet,
		applicationSet,
		sid.NewSid,
		newApp,
	))
}
