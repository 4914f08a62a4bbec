package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"tripplanner/cmd/fx/chat_fx"
	"tripplanner/cmd/fx/config_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/memcache_fx"
	"tripplanner/cmd/fx/prompt_fx"
	"tripplanner/cmd/fx/report_fx"
	"tripplanner/cmd/fx/selection_fx"
	"tripplanner/cmd/fx/session_fx"
	"tripplanner/cmd/fx/trip_fx"
	"tripplanner/internal/api"
	"tripplanner/internal/config"
	"tripplanner/internal/services"
	"tripplanner/pkg/memcache"
)

func main() {
	app := fx.New(
		config_fx.Module,
		memcache_fx.Module,
		prompt_fx.Module,
		session_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		selection_fx.Module,
		report_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(StartSessionSweeper),
	)

	app.Run()
}

func ProvideRouter(cfg *config.Config, sessions memcache.SessionStore, p api.RouterParams) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	return api.NewRouter(p, api.RouterOptions{
		SessionSecret:  []byte(cfg.Session.Secret),
		Sessions:       sessions,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at %s", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

// StartSessionSweeper drops abandoned sessions on a fixed interval.
func StartSessionSweeper(lc fx.Lifecycle, cfg *config.Config, sessionService services.SessionServiceInterface) {
	if cfg.Session.SweepInterval <= 0 {
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Session.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						sessionService.SweepExpired(context.Background())
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			select {
			case <-done:
			case <-ctx.Done():
			}
			return nil
		},
	})
}
