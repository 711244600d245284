package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"fleet-booking/internal/infra/badgerstore"
	"fleet-booking/internal/infra/db"
	"fleet-booking/internal/infra/pgquery"
	"fleet-booking/internal/infra/uow"
	"fleet-booking/internal/pkg/config"
	"fleet-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork opens the backend selected by STORE_DRIVER and closes it on stop.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return uow.NewPostgresUoW(pool, pgquery.New()), nil

	case config.StoreDriverBadger:
		store, err := badgerstore.Open(cfg.Store)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		logger.Info("using badger store", "dir", cfg.Store.BadgerDir, "in_memory", cfg.Store.BadgerInMemory)
		return badgerstore.NewBadgerUoW(store), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}
