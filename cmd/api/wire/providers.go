package wire

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"customfields-server/cmd/config"
	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/cache"
	"customfields-server/internal/infra/pubsub"
	"customfields-server/internal/infra/sql"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

// The injectors run once per controller; these singletons make them share
// one database, one cache and one broker.
var (
	databaseOnce sync.Once
	database     sql.ORM
	databaseErr  error

	cacheOnce sync.Once
	defCache  cache.Cache
	cacheErr  error

	publisherOnce    sync.Once
	publisherFactory pubsub.PublisherFactory
)

func environment() string {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}
	return env
}

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	databaseOnce.Do(func() {
		if cfg.Database.Driver == "sqlite" || environment() == "local" {
			slog.Info("using in-memory sqlite database")
			database, databaseErr = sql.NewMemoryORM()
			return
		}

		database, databaseErr = sql.NewPosgreORM(sql.PostgresOptions{
			DSN:          cfg.Database.DSN,
			QueryTimeout: cfg.Database.QueryTimeout,
			AutoMigrate:  cfg.Database.AutoMigrate,
		})
	})
	return database, databaseErr
}

func provideDefinitionCache(cfg config.AppConfig) (cache.Cache, error) {
	cacheOnce.Do(func() {
		switch {
		case !cfg.Cache.Enabled:
			defCache = cache.NoopCache{}
		case cfg.Cache.Backend == "redis":
			redisConfig := cache.DefaultRedisConfig()
			redisConfig.Addr = cfg.Cache.Redis.Addr
			redisConfig.Password = cfg.Cache.Redis.Password
			redisConfig.DB = cfg.Cache.Redis.DB
			if cfg.Cache.Redis.KeyPrefix != "" {
				redisConfig.KeyPrefix = cfg.Cache.Redis.KeyPrefix
			}
			defCache, cacheErr = cache.NewRedisCache(redisConfig)
		case cfg.Cache.Backend == "ristretto" || cfg.Cache.Backend == "":
			defCache, cacheErr = cache.New(cache.DefaultConfig())
		default:
			cacheErr = fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
		}
	})
	return defCache, cacheErr
}

func provideDefinitionCacheTTL(cfg config.AppConfig) usecases.DefinitionCacheTTL {
	return usecases.DefinitionCacheTTL(cfg.Cache.TTL)
}

func providePublisherFactory(cfg config.AppConfig) pubsub.PublisherFactory {
	publisherOnce.Do(func() {
		publisherFactory = pubsub.NewPublisherFactory(pubsub.FactoryOptions{
			Environment:  environment(),
			Enabled:      cfg.Events.Enabled,
			KafkaBrokers: cfg.Kafka.Brokers,
		})
	})
	return publisherFactory
}

func providePartitioningThresholds(cfg config.AppConfig) domain.PartitioningThresholds {
	return domain.PartitioningThresholds{
		RowThreshold:           cfg.Partitioning.RowThreshold,
		FieldsPerPageThreshold: cfg.Partitioning.FieldsPerPageThreshold,
	}
}

func provideNamespaceResolver() shareddomain.NamespaceResolver {
	return shareddomain.ContextNamespaceResolver{}
}

func provideStatsReportSchedule(cfg config.AppConfig) usecases.StatsReportSchedule {
	return usecases.StatsReportSchedule(cfg.Maintenance.StatsSchedule)
}

func provideReportNamespaces(cfg config.AppConfig) ([]shareddomain.Namespace, error) {
	namespaces := make([]shareddomain.Namespace, 0, len(cfg.Maintenance.Namespaces))
	for _, value := range cfg.Maintenance.Namespaces {
		ns, err := shareddomain.NewNamespace(value)
		if err != nil {
			return nil, err
		}
		namespaces = append(namespaces, ns)
	}
	return namespaces, nil
}
