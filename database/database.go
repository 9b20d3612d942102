package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/1rvyn/log-a-line/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const (
	// StoreName identifies the draft store and its schema version row.
	StoreName = "LogALineDB"
	// SchemaVersion is the only schema this store knows how to create.
	SchemaVersion = 1
)

// Config selects and tunes the backing database.
type Config struct {
	Driver          string // "sqlite" or "postgres"
	Path            string // sqlite file
	DatabaseURL     string // postgres DSN
	ConnectAttempts int
	RetryDelay      time.Duration
	LogLevel        logger.LogLevel
}

// Store owns the draft database. It is unusable until Open succeeds, and
// operations issued before then are dropped rather than queued.
type Store struct {
	cfg Config

	once    sync.Once
	ready   chan struct{}
	mu      sync.RWMutex
	handle  *Handle
	initErr error
}

func New(cfg Config) *Store {
	if cfg.ConnectAttempts <= 0 {
		cfg.ConnectAttempts = 1
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = logger.Warn
	}
	return &Store{cfg: cfg, ready: make(chan struct{})}
}

// Start opens the store in the background. A failure is logged and the
// store stays in its degraded, drop-everything mode.
func (s *Store) Start(ctx context.Context) {
	go func() {
		if _, err := s.Open(ctx); err != nil {
			log.Printf("Draft store unavailable, continuing without persistence: %v", err)
		}
	}()
}

// Open initializes the store once. Concurrent and repeated callers share
// the first result.
func (s *Store) Open(ctx context.Context) (*Handle, error) {
	s.once.Do(func() {
		h, err := s.open(ctx)

		s.mu.Lock()
		s.handle, s.initErr = h, err
		s.mu.Unlock()
		close(s.ready)
	})
	<-s.ready

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handle, s.initErr
}

// Ready is closed once initialization has finished, successfully or not.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Handle returns the live handle, or nil while the store is not ready.
func (s *Store) Handle() *Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handle
}

// Get reads through the current handle.
func (s *Store) Get(ctx context.Context, name string) (models.Draft, bool, error) {
	return s.Handle().Get(ctx, name)
}

// Put writes through the current handle.
func (s *Store) Put(ctx context.Context, name, text string) error {
	return s.Handle().Put(ctx, name, text)
}

// Close releases the database if it was opened.
func (s *Store) Close() error {
	// Waits for an open in progress, or stops a later one from starting.
	s.once.Do(func() {
		s.mu.Lock()
		s.initErr = ErrClosed
		s.mu.Unlock()
		close(s.ready)
	})

	s.mu.Lock()
	h := s.handle
	s.handle = nil
	s.mu.Unlock()
	if h == nil {
		return nil
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) open(ctx context.Context) (*Handle, error) {
	dialector, err := s.dialector()
	if err != nil {
		return nil, &InitError{Store: StoreName, Err: err}
	}

	var db *gorm.DB
	for i := 0; i < s.cfg.ConnectAttempts; i++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(s.cfg.LogLevel),
		})
		if err == nil {
			break
		}
		if i+1 < s.cfg.ConnectAttempts {
			log.Printf("Failed to connect to draft store, retrying in %s. Error: %v", s.cfg.RetryDelay, err)
			select {
			case <-ctx.Done():
				return nil, &InitError{Store: StoreName, Err: ctx.Err()}
			case <-time.After(s.cfg.RetryDelay):
			}
		}
	}
	if err != nil {
		return nil, &InitError{Store: StoreName, Err: err}
	}

	if s.cfg.Driver != "postgres" {
		// Writes are serialized so concurrent puts never hit SQLITE_BUSY.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, &InitError{Store: StoreName, Err: err}
		}
		sqlDB.SetMaxOpenConns(1)
	}

	created, err := ensureSchema(db.WithContext(ctx))
	if err != nil {
		if sqlDB, derr := db.DB(); derr == nil {
			_ = sqlDB.Close()
		}
		return nil, &InitError{Store: StoreName, Err: err}
	}
	if created {
		log.Printf("Created draft store %s (schema v%d)", StoreName, SchemaVersion)
	} else {
		log.Printf("Opened draft store %s", StoreName)
	}

	return &Handle{db: db}, nil
}

func (s *Store) dialector() (gorm.Dialector, error) {
	switch s.cfg.Driver {
	case "postgres":
		if s.cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is not set")
		}
		return postgres.Open(s.cfg.DatabaseURL), nil
	case "", "sqlite":
		if s.cfg.Path == "" {
			return nil, errors.New("sqlite path is not set")
		}
		if err := os.MkdirAll(filepath.Dir(s.cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
		return sqlite.Open(s.cfg.Path + "?_busy_timeout=5000&_journal_mode=WAL"), nil
	default:
		return nil, fmt.Errorf("unknown driver %q", s.cfg.Driver)
	}
}

// ensureSchema creates the collection on first use and reuses it afterwards.
func ensureSchema(db *gorm.DB) (bool, error) {
	m := db.Migrator()
	if m.HasTable(&models.StoreMeta{}) {
		var meta models.StoreMeta
		res := db.Where("name = ?", StoreName).Limit(1).Find(&meta)
		if res.Error != nil {
			return false, fmt.Errorf("read schema version: %w", res.Error)
		}
		if res.RowsAffected == 1 {
			if meta.Version > SchemaVersion {
				return false, fmt.Errorf("%w: v%d", ErrSchemaTooNew, meta.Version)
			}
			if m.HasTable(&models.Draft{}) {
				return false, nil
			}
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if !tx.Migrator().HasTable(&models.StoreMeta{}) {
			if err := tx.Migrator().CreateTable(&models.StoreMeta{}); err != nil {
				return err
			}
		}
		if !tx.Migrator().HasTable(&models.Draft{}) {
			if err := tx.Migrator().CreateTable(&models.Draft{}); err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.StoreMeta{Name: StoreName, Version: SchemaVersion}).Error
	})
	if err != nil {
		return false, fmt.Errorf("create schema: %w", err)
	}
	return true, nil
}

// ParseLogLevel maps a config string to a gorm log level, defaulting to warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
