package main

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
	"github.com/innovate-connect/innovate/internal/access"
	"github.com/innovate-connect/innovate/internal/auth"
	"github.com/innovate-connect/innovate/internal/handlers"
	"github.com/innovate-connect/innovate/internal/health"
	"github.com/innovate-connect/innovate/internal/router"
	"github.com/innovate-connect/innovate/internal/services"
	"github.com/innovate-connect/innovate/internal/store"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := openDatabase(cmd)

		if err != nil {
			return err
		}

		sqlDB, err := gdb.DB()

		if err != nil {
			return err
		}
		defer sqlDB.Close()

		tokens, err := auth.NewTokenIssuer(cfg.JWT)

		if err != nil {
			return fmt.Errorf("token issuer: %w", err)
		}

		st := store.New(gdb)

		guard, err := access.NewGuard(st)

		if err != nil {
			return err
		}

		notify := services.Notifications{
			Notifier: services.NewNotifier(cfg.Email, logger),
			Logger:   logger,
			Timeout:  cfg.Email.Timeout,
		}

		h := &handlers.Handler{
			Accounts:     services.NewAccountService(st, tokens, notify, logger),
			Applications: services.NewApplicationService(st, notify, logger),
			Internships:  services.NewInternshipService(st, logger),
			Ideas:        services.NewIdeaService(st, logger),
			Profiles:     services.NewProfileService(st),
			Contacts:     services.NewContactService(st),
			Admin:        services.NewAdminService(st),
			Stats:        services.NewStatsClient(cfg.LeetCode),
			Guard:        guard,
			Logger:       logger,
			Health:       healthChecker(sqlDB),
		}

		gin.SetMode(gin.ReleaseMode)

		srv := &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           router.NewRouter(h, tokens, cfg.Server, logger),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)

		go func() {
			logger.Info("server listening", "addr", srv.Addr)

			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}

		return nil
	},
}

func healthChecker(db health.Pinger) *health.Checker {
	probes := []health.Probe{health.Database(db)}

	if cfg.Email.SMTPHost != "" {
		probes = append(probes, health.Resolver("smtp", cfg.Email.SMTPHost))
	}

	if cfg.LeetCode.BaseURL != "" {
		probes = append(probes, health.HTTP("leetcode", cfg.LeetCode.BaseURL, cfg.LeetCode.Timeout))
	}

	return health.NewChecker(5*time.Second, probes...)
}
