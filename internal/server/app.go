// Package server wires storage, the account service and both transports,
// and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/palace/internal/cryptox"
	"github.com/dmitrijs2005/palace/internal/logging"
	"github.com/dmitrijs2005/palace/internal/server/auth"
	"github.com/dmitrijs2005/palace/internal/server/config"
	"github.com/dmitrijs2005/palace/internal/server/httpapi"
	"github.com/dmitrijs2005/palace/internal/server/metrics"
	"github.com/dmitrijs2005/palace/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/palace/internal/server/services"

	gs "github.com/dmitrijs2005/palace/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       *repomanager.Manager
	userService *services.UserService
	metrics     *metrics.Metrics
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	repos, err := repomanager.Open(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	tokens, err := auth.NewCodec(c.TokenScheme, []byte(c.SecretKey), c.TokenValidityDuration)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	scheme, err := cryptox.ParseScheme(c.PasswordScheme)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	us := services.NewUserService(repos.Users(), tokens, cryptox.NewPasswordHasher(scheme), logger)

	if c.SeedDemoUser {
		if err := us.SeedDemoAccount(ctx); err != nil {
			_ = repos.Close()
			return nil, fmt.Errorf("seed demo account: %w", err)
		}
	}

	logger.Info(ctx, "store ready", "driver", repos.Driver(), "token_scheme", c.TokenScheme)

	return &App{config: c, logger: logger, repos: repos, userService: us, metrics: metrics.New()}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.metrics)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.metrics)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both transports until ctx is cancelled, a signal arrives or
// one of the servers fails, then releases the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "Stopped, closing store")
	return app.repos.Close()
}
