// Package scoreboard persists finished matches with gorm
//
// sqlite is the default backend for local play; mysql serves the shared
// server deployment. Only the simulation result summary is stored.
package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	// DefaultLimit applies when Top is called with a non-positive limit
	DefaultLimit = 10
	// MaxLimit caps leaderboard queries
	MaxLimit = 100
)

var (
	ErrUnknownDriver = errors.New("unknown database driver")
	ErrEmptyGame     = errors.New("result has no game name")
)

// Result is one finished match
type Result struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Game       string    `gorm:"index;size:32" json:"game"`
	Score      int       `gorm:"index" json:"score"`
	Wave       int       `json:"wave"`
	Won        bool      `json:"won"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store wraps the gorm handle
type Store struct {
	db *gorm.DB
}

// dialector maps a driver name to its gorm dialector
func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite, "":
		return sqlite.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// Open connects and migrates the results table
func Open(driver, dsn string) (*Store, error) {
	d, err := dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if err := db.AutoMigrate(&Result{}); err != nil {
		return nil, fmt.Errorf("migrate results: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql handle: %w", err)
	}
	return sqlDB.Close()
}

// Record stores r, assigning an ID and timestamp when missing
func (s *Store) Record(ctx context.Context, r Result) (Result, error) {
	if r.Game == "" {
		return Result{}, ErrEmptyGame
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return Result{}, fmt.Errorf("record %s result: %w", r.Game, err)
	}
	return r, nil
}

// Top returns the best results for game, highest score first
// Ties go to the earlier match
func (s *Store) Top(ctx context.Context, game string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var results []Result
	err := s.db.WithContext(ctx).
		Where("game = ?", game).
		Order("score DESC").
		Order("created_at ASC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("query %s scores: %w", game, err)
	}
	return results, nil
}

// Count returns how many results exist for game
func (s *Store) Count(ctx context.Context, game string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Result{}).Where("game = ?", game).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count %s scores: %w", game, err)
	}
	return n, nil
}
