package sql

import (
	"fmt"

	"customfields-server/internal/infra/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewMemoryORM opens a private in-memory sqlite database. Each call gets its
// own database so that test suites and local runs never observe each other.
func NewMemoryORM() (ORM, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", utils.GenerateUUID())
	gormDB, err := gorm.Open(sqlite.Open(dsn), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite in-memory db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite connection pool: %w", err)
	}
	// a single connection serializes writers and keeps the memory database alive
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return &DB{DB: gormDB, autoMigrationEnabled: true, system: "sqlite"}, nil
}
