package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"customfields-server/internal/customfields/domain"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads server.yaml from config/ or /config, overridden by
// CUSTOMFIELDS_SERVER_* environment variables. A missing file is tolerated.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("customfields_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		setDefaults()

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				panic(fmt.Errorf("fatal error config file: %w", err))
			}
		}
		configInstance = newAppConfig()
	})

	return configInstance
}

func setDefaults() {
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("http.address", ":3000")
	viper.SetDefault("http.allowed_origins", []string{"http://localhost:5173"})
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.auto_migrate", true)
	viper.SetDefault("database.query_timeout", 30*time.Second)
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", "ristretto")
	viper.SetDefault("cache.ttl", 5*time.Minute)
	viper.SetDefault("cache.redis.addr", "localhost:6379")
	viper.SetDefault("cache.redis.key_prefix", "customfields:")
	viper.SetDefault("partitioning.row_threshold", domain.DefaultRowThreshold)
	viper.SetDefault("partitioning.fields_per_page_threshold", domain.DefaultFieldsPerPageThreshold)
	viper.SetDefault("events.enabled", false)
	viper.SetDefault("maintenance.stats_schedule", "")
}

func newAppConfig() AppConfig {
	return AppConfig{
		General: GeneralConfig{
			LogLevel: viper.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Address:        viper.GetString("http.address"),
			AllowedOrigins: viper.GetStringSlice("http.allowed_origins"),
		},
		Database: DatabaseConfig{
			Driver:       viper.GetString("database.driver"),
			DSN:          viper.GetString("database.dsn"),
			AutoMigrate:  viper.GetBool("database.auto_migrate"),
			QueryTimeout: viper.GetDuration("database.query_timeout"),
		},
		Cache: CacheConfig{
			Enabled: viper.GetBool("cache.enabled"),
			Backend: viper.GetString("cache.backend"),
			TTL:     viper.GetDuration("cache.ttl"),
			Redis: RedisConfig{
				Addr:      viper.GetString("cache.redis.addr"),
				Password:  viper.GetString("cache.redis.password"),
				DB:        viper.GetInt("cache.redis.db"),
				KeyPrefix: viper.GetString("cache.redis.key_prefix"),
			},
		},
		Partitioning: PartitioningConfig{
			RowThreshold:           viper.GetInt64("partitioning.row_threshold"),
			FieldsPerPageThreshold: viper.GetInt64("partitioning.fields_per_page_threshold"),
		},
		Events: EventsConfig{
			Enabled: viper.GetBool("events.enabled"),
		},
		Kafka: KafkaConfig{
			Brokers: viper.GetStringSlice("kafka.brokers"),
		},
		Maintenance: MaintenanceConfig{
			StatsSchedule: viper.GetString("maintenance.stats_schedule"),
			Namespaces:    viper.GetStringSlice("maintenance.namespaces"),
		},
	}
}

type AppConfig struct {
	General      GeneralConfig
	HTTP         HTTPConfig
	Database     DatabaseConfig
	Cache        CacheConfig
	Partitioning PartitioningConfig
	Events       EventsConfig
	Kafka        KafkaConfig
	Maintenance  MaintenanceConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Address        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver       string
	DSN          string
	AutoMigrate  bool
	QueryTimeout time.Duration
}

type CacheConfig struct {
	Enabled bool
	Backend string
	TTL     time.Duration
	Redis   RedisConfig
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type PartitioningConfig struct {
	RowThreshold           int64
	FieldsPerPageThreshold int64
}

type EventsConfig struct {
	Enabled bool
}

type KafkaConfig struct {
	Brokers []string
}

type MaintenanceConfig struct {
	StatsSchedule string
	Namespaces    []string
}
