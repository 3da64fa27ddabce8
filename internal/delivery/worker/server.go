package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"saaskit/config"
	"saaskit/internal/delivery"
	httpmiddleware "saaskit/internal/delivery/http/middleware"
	"saaskit/internal/delivery/http/router/handler"
	"saaskit/internal/delivery/middleware"
	workerhandler "saaskit/internal/delivery/worker/handler"
	"saaskit/internal/domain/lifecycle"
	"saaskit/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// Worker routes.
const (
	PathSubscriptionEvents = "/push/subscription-events"
	PathCleanup            = "/tasks/cleanup"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *workerhandler.PushHandler
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Cfg, params.Logger, params.PushHandler)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the worker echo instance with its routes registered.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *workerhandler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Worker.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.Worker.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.Worker.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.Worker.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())

	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	e.Use(requestIDMiddleware.Process)

	e.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		Filters:          []slogecho.Filter{slogecho.IgnorePath("/health")},
	}))
	e.Use(echomiddleware.BodyLimit(cfg.Worker.HTTP.MaxRequestBodySize))

	errorMiddleware := httpmiddleware.NewErrorMiddleware(logger)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	e.GET("/health", handler.HealthCheck)
	e.POST(PathSubscriptionEvents, pushHandler.HandleSubscriptionEvent)
	e.POST(PathCleanup, pushHandler.HandleCleanup)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Worker.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
