package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/dukaforge/stockroom/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "inventory.db"

// Backend implements the Store interface using SQLite as the engine.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
	log      *zap.Logger
}

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize. A nil logger is
// replaced with a no-op one.
func NewBackend(log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{log: log}
}

// Attach opens the database described by config and initializes the schema.
// With InMemory set the database lives only for this process; otherwise it
// is a file inside DataDir, created on first run.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dsn := ":memory:"
	if !config.InMemory {
		dataDir := config.DataDir
		if dataDir == "" {
			dataDir = "."
		}
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		dsn = filepath.Join(dataDir, dbFileName)
	}

	db, err := sql.Open("sqlite", dsn+"?_pragma=foreign_keys(1)")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	// A single connection keeps the in-memory database alive across calls.
	// The application is single-threaded, so this costs nothing.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	b.db = db
	b.attached = true
	b.log.Info("store attached", zap.String("dsn", dsn))
	return nil
}

// Detach closes the database. Returns ErrDetached if not attached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}

	err := b.db.Close()
	b.db = nil
	b.attached = false
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	b.log.Info("store detached")
	return nil
}
