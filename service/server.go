package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogshell/app/routes"
	"blogshell/app/services"

	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the command endpoint and blog views over HTTP",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", env.cfg.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", env.cfg.Addr, err)
			}
			service := services.NewBlogService(env.repo).WithLogger(env.logger)
			return serve(ctx, ln, routes.SetupRoutes(service), env.logger)
		},
	}
}

// serve runs an HTTP server on ln until ctx is cancelled, then drains
// in-flight requests.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting blog service", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down blog service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}
