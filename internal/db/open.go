package db

import (
	"context"
	"fmt"

	"flightops360/hangar/internal/config"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/metrics"
	"flightops360/hangar/internal/store"
)

// OpenStore connects the backend selected by STORE_DRIVER and wraps it with
// store metrics when m is not nil.
func OpenStore(ctx context.Context, cfg *config.Config, m *metrics.MetricsRegistry) (store.Store, error) {
	var (
		s   store.Store
		err error
	)
	switch cfg.StoreDriver {
	case config.StoreFirestore:
		client, cerr := ConnectFirestore(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
		if cerr != nil {
			return nil, cerr
		}
		s = store.NewFirestoreStore(client)

	case config.StorePostgres:
		raw, cerr := ConnectPostgres(cfg)
		if cerr != nil {
			return nil, cerr
		}
		orm, cerr := InitPostgresORM(raw, !cfg.IsProduction())
		if cerr != nil {
			raw.Close()
			return nil, cerr
		}
		s, err = store.NewSQLStore(orm, raw)

	case config.StoreSQLite:
		orm, cerr := InitSQLiteORM(cfg.SQLitePath, false)
		if cerr != nil {
			return nil, cerr
		}
		s, err = store.NewSQLStore(orm, nil)

	case config.StoreMongo:
		client, database, cerr := ConnectMongo(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword, cfg.MongoDB)
		if cerr != nil {
			return nil, cerr
		}
		s = store.NewMongoStore(client, database)

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	logging.Info("document store ready", "driver", cfg.StoreDriver)
	return store.Instrument(s, m), nil
}
