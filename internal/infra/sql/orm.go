package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type ORM interface {
	AutoMigrate(dst ...any) error
	Create(value any) ORM
	CreateInBatches(value any, batchSize int) ORM
	Delete(value any, conds ...any) ORM
	Distinct(args ...any) ORM
	Find(dest any, conds ...any) ORM
	First(dest any, conds ...any) ORM
	Group(name string) ORM
	Having(query any, args ...any) ORM
	Limit(limit int) ORM
	Model(value any) ORM
	Omit(columns ...string) ORM
	Order(value any) ORM
	Pluck(column string, dest any) ORM
	Save(value any) ORM
	Scan(dest any) ORM
	Select(query any, args ...any) ORM
	Transaction(fc func(tx ORM) error, opts ...*sql.TxOptions) error
	Updates(values any) ORM
	Where(query any, args ...any) ORM
	WithContext(ctx context.Context) ORM
	WithTimeout(ctx context.Context, timeout time.Duration) ORM

	Error() error
	RowsAffected() int64
}

type DB struct {
	*gorm.DB
	autoMigrationEnabled bool
	timeout              time.Duration
	system               string
}

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicatedKey  = errors.New("duplicated key")
)

const _pgUniqueViolation = "23505"

func (d DB) Error() error {
	switch {
	case d.DB.Error == nil:
		return nil
	case errors.Is(d.DB.Error, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case isDuplicatedKey(d.DB.Error):
		return fmt.Errorf("%w: %w", ErrDuplicatedKey, d.DB.Error)
	default:
		return fmt.Errorf("database error: %w", d.DB.Error)
	}
}

func isDuplicatedKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == _pgUniqueViolation
	}

	return false
}

func (d DB) RowsAffected() int64 {
	return d.DB.RowsAffected
}

var _ ORM = (*DB)(nil)

func (d DB) AutoMigrate(dst ...any) error {
	if d.autoMigrationEnabled {
		return d.DB.AutoMigrate(dst...)
	}

	return nil
}

func (d DB) Create(value any) ORM {
	d.setSpanAttributes("create")
	tx := d.DB.Create(value)
	d.DB = tx
	return &d
}

func (d DB) CreateInBatches(value any, batchSize int) ORM {
	d.setSpanAttributes("create")
	tx := d.DB.CreateInBatches(value, batchSize)
	d.DB = tx
	return &d
}

func (d DB) Delete(value any, conds ...any) ORM {
	d.setSpanAttributes("delete")
	tx := d.DB.Delete(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) Distinct(args ...any) ORM {
	tx := d.DB.Distinct(args...)
	d.DB = tx
	return &d
}

func (d DB) Find(value any, conds ...any) ORM {
	d.setSpanAttributes("find")
	tx := d.DB.Find(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) First(value any, conds ...any) ORM {
	d.setSpanAttributes("first")
	tx := d.DB.First(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) Group(name string) ORM {
	tx := d.DB.Group(name)
	d.DB = tx
	return &d
}

func (d DB) Having(query any, args ...any) ORM {
	tx := d.DB.Having(query, args...)
	d.DB = tx
	return &d
}

func (d DB) Limit(value int) ORM {
	tx := d.DB.Limit(value)
	d.DB = tx
	return &d
}

func (d DB) Model(value any) ORM {
	tx := d.DB.Model(value)
	d.DB = tx
	return &d
}

func (d DB) Omit(columns ...string) ORM {
	tx := d.DB.Omit(columns...)
	d.DB = tx
	return &d
}

func (d DB) Order(value any) ORM {
	tx := d.DB.Order(value)
	d.DB = tx
	return &d
}

func (d DB) Pluck(column string, dest any) ORM {
	d.setSpanAttributes("pluck")
	tx := d.DB.Pluck(column, dest)
	d.DB = tx
	return &d
}

func (d DB) Save(value any) ORM {
	d.setSpanAttributes("save")
	tx := d.DB.Save(value)
	d.DB = tx
	return &d
}

func (d DB) Scan(dest any) ORM {
	d.setSpanAttributes("scan")
	tx := d.DB.Scan(dest)
	d.DB = tx
	return &d
}

func (d DB) Select(query any, args ...any) ORM {
	tx := d.DB.Select(query, args...)
	d.DB = tx
	return &d
}

func (d DB) Updates(values any) ORM {
	d.setSpanAttributes("update")
	tx := d.DB.Updates(values)
	d.DB = tx
	return &d
}

func (d DB) Where(value any, conds ...any) ORM {
	tx := d.DB.Where(value, conds...)
	d.DB = tx
	return &d
}

// WithContext binds ctx to the session. When a default timeout is configured
// the context deadline is shortened to it; the caller's cancellation still applies.
func (d DB) WithContext(value context.Context) ORM {
	if d.timeout > 0 {
		return d.WithTimeout(value, d.timeout)
	}

	tx := d.DB.WithContext(value)
	d.DB = tx
	return &d
}

func (d DB) WithTimeout(ctx context.Context, timeout time.Duration) ORM {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	// release the timer once the deadline or the parent fires
	go func() {
		<-timeoutCtx.Done()
		cancel()
	}()
	tx := d.DB.WithContext(timeoutCtx)
	d.DB = tx
	return &d
}

func (d DB) Transaction(f func(ORM) error, opts ...*sql.TxOptions) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		return f(&DB{DB: tx, autoMigrationEnabled: d.autoMigrationEnabled, timeout: d.timeout, system: d.system})
	}, opts...)
}

// setSpanAttributes sets OpenTelemetry span attributes for database operations
func (d DB) setSpanAttributes(operation string) {
	if ctx := d.DB.Statement.Context; ctx != nil {
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetAttributes(
				attribute.String("span.kind", "client"),
				attribute.String("component", "database"),
				attribute.String("db.system", d.system),
				attribute.String("db.operation", operation),
			)
		}
	}
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}
