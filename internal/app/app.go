package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/mines-engine/internal/config"
	"github.com/vancomm/mines-engine/internal/middleware"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	basePath string
	limits   config.Limits
	ws       *config.WebSocket
}

func New(logger *slog.Logger) *App {
	router := http.NewServeMux()

	app := &App{
		logger:   logger,
		router:   router,
		basePath: config.BasePath(),
	}

	return app
}

// Configure reads the environment and registers routes. It must be called
// once before Handler or Start.
func (a *App) Configure() error {
	limits, err := config.NewLimits()
	if err != nil {
		return fmt.Errorf("unable to read limits: %w", err)
	}

	a.limits = *limits

	ws, err := config.NewWebSocket()
	if err != nil {
		return fmt.Errorf("unable to read ws config: %w", err)
	}

	a.ws = ws

	a.loadRoutes()

	return nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Cors(),
		middleware.Logging(a.logger),
	)
}

func (a *App) Start(ctx context.Context) error {
	if err := a.Configure(); err != nil {
		return err
	}

	port := config.Port()
	server := &http.Server{
		Addr:    port,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Info(
		"server listening",
		slog.String("port", port),
		slog.String("base path", a.basePath),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("unable to listen and serve: %w", err)
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
