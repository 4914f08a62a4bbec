package session_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/config"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(provideSessionService)

func provideSessionService(cfg *config.Config, store mem.SessionStore) services.SessionServiceInterface {
	return services.NewSessionService(store, []byte(cfg.Session.Secret), cfg.Session.TTL)
}
