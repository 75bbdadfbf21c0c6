package session_fx

import (
	"context"
	"log"
	"time"

	"go.uber.org/fx"

	"tripgenius/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewSessionService),
	fx.Invoke(StartSessionSweeper),
)

// StartSessionSweeper runs the hourly expired-session purge for the
// life of the process. The ticker goroutine stops on shutdown.
func StartSessionSweeper(lc fx.Lifecycle, sessionService services.SessionServiceInterface) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(services.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if _, err := sessionService.Sweep(context.Background()); err != nil {
							log.Printf("Session sweep failed: %v", err)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}
