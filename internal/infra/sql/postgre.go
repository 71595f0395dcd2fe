package sql

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout    = 30 * time.Second
	_maxOpenConns    = 20
	_maxIdleConns    = 5
	_connMaxLifetime = 30 * time.Minute
)

type PostgresOptions struct {
	DSN          string
	QueryTimeout time.Duration
	AutoMigrate  bool
}

func NewPosgreORM(opts PostgresOptions) (*DB, error) {
	dsn := opts.DSN
	pass, ok := os.LookupEnv("CUSTOMFIELDS_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(_maxOpenConns)
	sqlDB.SetMaxIdleConns(_maxIdleConns)
	sqlDB.SetConnMaxLifetime(_connMaxLifetime)

	timeout := opts.QueryTimeout
	if timeout == 0 {
		timeout = _queryTimeout
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: opts.AutoMigrate,
		timeout:              timeout,
		system:               "postgresql",
	}, nil
}
