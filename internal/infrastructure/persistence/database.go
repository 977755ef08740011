package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/erp/shipping/internal/infrastructure/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	applog "github.com/erp/shipping/internal/infrastructure/logger"
)

// Database is the PostgreSQL handle shared by every shipping repository.
type Database struct {
	DB *gorm.DB
}

// NewDatabase connects with SQL logging silenced.
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return open(cfg, gormlogger.Default.LogMode(gormlogger.Silent))
}

// NewDatabaseWithLogger connects and traces SQL through zap at logLevel.
func NewDatabaseWithLogger(cfg *config.DatabaseConfig, zapLogger *zap.Logger, logLevel gormlogger.LogLevel) (*Database, error) {
	return open(cfg, applog.NewGormLogger(zapLogger, logLevel))
}

// Rating reads the same few records repeatedly, so statements are prepared
// once per connection and single writes skip the implicit transaction.
func open(cfg *config.DatabaseConfig, gormLogger gormlogger.Interface) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	d := &Database{DB: db}
	pool, err := d.pool()
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	pool.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return d, nil
}

func (d *Database) pool() (*sql.DB, error) {
	pool, err := d.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("database pool: %w", err)
	}
	return pool, nil
}

func (d *Database) Close() error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	return pool.Close()
}

// Ping satisfies the health handler's Pinger.
func (d *Database) Ping() error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	return pool.Ping()
}

// Stats reports the connection pool counters.
func (d *Database) Stats() (sql.DBStats, error) {
	pool, err := d.pool()
	if err != nil {
		return sql.DBStats{}, err
	}
	return pool.Stats(), nil
}

// Transaction runs fn in one transaction bound to ctx.
func (d *Database) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.DB.WithContext(ctx).Transaction(fn)
}
