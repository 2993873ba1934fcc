package app

import (
	"context"
	"fmt"

	"github.com/ticketapp/ticket-system/internal/core/ports"
	"github.com/ticketapp/ticket-system/internal/core/service"
	"github.com/ticketapp/ticket-system/internal/infrastructure/config"
	"github.com/ticketapp/ticket-system/internal/infrastructure/notify"
	"github.com/ticketapp/ticket-system/internal/infrastructure/store"
	"github.com/ticketapp/ticket-system/pkg/logger"
)

// Bootstrap builds a ready-to-use App from configuration: it initialises the
// shared logger, selects the store backend, wires the services with the
// configured failure rate, and falls back to the logging notification sink
// when the host supplies none.
func Bootstrap(ctx context.Context, cfg *config.Config, renderer Renderer, notifier ports.Notifier) (*App, error) {
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	st, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}

	auth := service.NewAuthService(st, log)
	tickets := service.NewTicketService(st, service.RandomFailures(cfg.Store.FailureRate), log)
	return New(auth, tickets, notifier, renderer, log), nil
}

func buildStore(ctx context.Context, cfg *config.Config) (ports.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendFile:
		return store.NewFileStore(cfg.Store.Dir)
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	case config.BackendRedis:
		client, err := store.ConnectRedis(ctx, store.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client), nil
	case config.BackendMongo:
		_, db, err := store.ConnectMongo(ctx, store.MongoConfig{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		return store.NewMongoStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
