package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	
	"go.uber.org/zap"
	
	"github.com/Wenrh2004/playground/pkg/application/server"
	"github.com/Wenrh2004/playground/pkg/log"
)

type App struct {
	name    string
	logger  *log.Logger
	servers []server.Server
}

type Option func(a *App)

func NewApp(opts ...Option) *App {
	a := &App{logger: log.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func WithServer(servers ...server.Server) Option {
	return func(a *App) {
		a.servers = append(a.servers, servers...)
	}
}

func WithName(name string) Option {
	return func(a *App) {
		a.name = name
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// Run starts every server and blocks until a termination signal arrives or
// ctx is done, then stops the servers in registration order.
func (a *App) Run(ctx context.Context) error {
	var cancel context.CancelFunc
	ctx, cancel = context.WithCancel(ctx)
	defer cancel()
	
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	
	for _, srv := range a.servers {
		go func(srv server.Server) {
			srv.Start()
		}(srv)
	}
	
	select {
	case sig := <-signals:
		a.logger.Info("received termination signal", zap.String("app", a.name), zap.String("signal", sig.String()))
	case <-ctx.Done():
		a.logger.Info("context canceled", zap.String("app", a.name))
	}
	
	for _, srv := range a.servers {
		srv.Stop()
	}
	
	return nil
}
