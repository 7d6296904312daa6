package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/ledger"
	"github.com/shenikar/ambulance_dispatch_system/internal/lock"
	"github.com/shenikar/ambulance_dispatch_system/internal/notify"
	"github.com/shenikar/ambulance_dispatch_system/internal/repository"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/shenikar/ambulance_dispatch_system/pkg/postgres"
	redisclient "github.com/shenikar/ambulance_dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"
)

// App - собранные по конфигурации компоненты диспетчера
type App struct {
	Service     service.DispatchService
	RedisClient *redis.Client

	closers []func()
}

// Close освобождает ресурсы в обратном порядке открытия
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func (a *App) onClose(fn func()) {
	a.closers = append(a.closers, fn)
}

// RunMigrations применяет миграции схемы records
func RunMigrations(databaseURL, migrationsDir string, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := databaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://"+migrationsDir,
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// Build подключает хранилище, реестр, блокировки и издателей согласно cfg.
// При ошибке уже открытые ресурсы закрываются.
func Build(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	a := &App{}
	ok := false
	defer func() {
		if !ok {
			a.Close()
		}
	}()

	if cfg.NeedsRedis() {
		client, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		a.RedisClient = client
		a.onClose(func() { client.Close() })
		log.Info("Successfully connected to Redis")
	}

	repo, err := a.buildRepository(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	anchor, err := a.buildLedger(cfg, log)
	if err != nil {
		return nil, err
	}

	var locker service.Locker = lock.NewKeyedMutex()
	if cfg.LockBackend == config.LockRedis {
		locker = lock.NewRedisLocker(a.RedisClient, cfg.LockTTL, log)
	}

	publisher, err := a.buildPublisher(cfg, log)
	if err != nil {
		return nil, err
	}

	a.Service = service.NewDispatchService(repo, anchor, locker, publisher, log, cfg)
	ok = true
	return a, nil
}

func (a *App) buildRepository(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.DispatchRepository, error) {
	log.WithField("store_backend", cfg.StoreBackend).Info("Initializing record store")

	switch cfg.StoreBackend {
	case config.StoreFile:
		primary := repository.NewFileStore(cfg.DataDir, repository.PrimaryFileCollections, log)
		if err := primary.Init(
			repository.CollectionHospitals,
			repository.CollectionAmbulances,
			repository.CollectionResponses,
		); err != nil {
			return nil, fmt.Errorf("failed to init file store: %w", err)
		}
		mirror := repository.NewFileStore(cfg.MirrorDir, repository.MirrorFileCollections, log)
		return repository.NewDispatchRepository(primary, mirror, log), nil

	case config.StoreRedis:
		primary := repository.NewRedisStore(a.RedisClient, "records")
		mirror := repository.NewRedisStore(a.RedisClient, "mirror")
		return repository.NewDispatchRepository(primary, mirror, log), nil

	case config.StorePostgres:
		if err := RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir, log); err != nil {
			return nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.onClose(dbpool.Close)
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewDispatchRepository(repository.NewPostgresStore(dbpool), nil, log), nil

	default:
		store := repository.NewMemoryStore()
		store.Init(
			repository.CollectionHospitals,
			repository.CollectionAmbulances,
			repository.CollectionResponses,
		)
		return repository.NewDispatchRepository(store, nil, log), nil
	}
}

func (a *App) buildLedger(cfg *config.Config, log *logrus.Logger) (service.LedgerAnchor, error) {
	if cfg.LedgerBackend == config.LedgerNode {
		log.WithField("node_url", cfg.LedgerNodeURL).Info("Using remote ledger node")
		return ledger.NewNodeClient(cfg.LedgerNodeURL, cfg.LedgerTimeout), nil
	}

	chain, err := ledger.OpenChainLedger(cfg.LedgerPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	a.onClose(func() {
		if err := chain.Close(); err != nil {
			log.WithError(err).Error("Failed to close ledger")
		}
	})
	return chain, nil
}

func (a *App) buildPublisher(cfg *config.Config, log *logrus.Logger) (notify.Publisher, error) {
	var publishers notify.MultiPublisher

	if cfg.WebhookURL != "" {
		publishers = append(publishers, notify.NewRedisPublisher(a.RedisClient))
	}

	if cfg.NATSURL != "" {
		natsPublisher, err := notify.NewNATSPublisher(cfg.NATSURL, log)
		if err != nil {
			return nil, err
		}
		a.onClose(natsPublisher.Close)
		publishers = append(publishers, natsPublisher)
	}

	if len(publishers) == 0 {
		return notify.NopPublisher{}, nil
	}
	return publishers, nil
}
