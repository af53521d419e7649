package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

// APIServer menjalankan HTTP server sampai ctx dibatalkan, lalu shutdown dengan graceful.
func APIServer(ctx context.Context, handler http.Handler, config utils.AppConfig, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", "http://localhost"+srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Info("Shutting down server", zap.Duration("timeout", timeout))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// DraftJanitor menghapus draft booking yang sudah lama tidak disentuh.
func DraftJanitor(ctx context.Context, booking usecase.BookingService, config utils.BookingConfig, logger *zap.Logger) {
	if config.DraftTTL <= 0 || config.CleanupInterval <= 0 {
		logger.Info("Draft janitor disabled")
		return
	}

	ticker := time.NewTicker(config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := booking.PurgeExpiredDrafts(ctx, config.DraftTTL); err != nil && ctx.Err() == nil {
				logger.Warn("Draft cleanup failed", zap.Error(err))
			}
		}
	}
}
