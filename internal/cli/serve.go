package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/maxviazov/offer-catalog-service/internal/config"
	"github.com/maxviazov/offer-catalog-service/internal/handler"
	"github.com/maxviazov/offer-catalog-service/internal/logger"
	"github.com/maxviazov/offer-catalog-service/internal/repository"
	"github.com/maxviazov/offer-catalog-service/internal/repository/postgres"
	"github.com/maxviazov/offer-catalog-service/internal/service"
)

// DefaultConfigPath is read when --config is not given.
const DefaultConfigPath = "config.yaml"

func newServeCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the offer catalog HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return Serve(ctx, path)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", DefaultConfigPath, "path to the YAML config file")
	return cmd
}

// Serve runs the API until ctx is done, then drains in-flight requests
// for at most app.shutdown_timeout seconds.
func Serve(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Logger.Env == "" {
		switch cfg.App.Env {
		case "dev", "staging", "prod":
			cfg.Logger.Env = cfg.App.Env
		}
	}
	if cfg.Logger.ServiceVersion == "" {
		cfg.Logger.ServiceVersion = cfg.App.Version
	}
	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	db, err := repository.New(ctx, cfg, &log)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	pool := db.Pool()
	svcs := handler.Services{
		Offers: service.NewOfferService(
			postgres.NewOfferRepository(pool),
			postgres.NewReadOnlyTxManager(pool),
			pagingFromConfig(cfg.Pagination),
			log,
		),
		Venues:     service.NewVenueService(postgres.NewVenueRepository(pool), log),
		PageStrips: service.NewPageStripService(),
	}

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(log))
	handler.Register(r, postgres.NewPinger(pool), svcs)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// pagingFromConfig maps the config's "0 means uncapped" onto service.Paging,
// where 0 means "use the default".
func pagingFromConfig(c config.PaginationConfig) service.Paging {
	p := service.Paging{PerPage: c.PerPage, MaxPages: c.MaxPages}
	if c.MaxPages == 0 {
		p.MaxPages = -1
	}
	return p
}
