// Package store persists computed products to a local JSON file.
//
// The file holds a versioned envelope around the ordered product collection.
// Reading never fails: a missing, unreadable or corrupted file is treated as
// an empty collection and logged. Writes go through a temp file and rename,
// guarded by an advisory lockfile.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/rshade/sustaintrack/internal/footprint"
	"github.com/rshade/sustaintrack/internal/logging"
)

// SchemaVersion is the current version of the products file envelope.
const SchemaVersion = 1

// DefaultFileName is the products file name inside the data directory.
const DefaultFileName = "products.json"

// ErrLockTimeout indicates the lockfile could not be acquired.
var ErrLockTimeout = errors.New("could not acquire products file lock")

// Lock tuning.
const (
	lockRetries    = 10
	lockRetryDelay = 100 * time.Millisecond
	staleLockAge   = 30 * time.Second
)

// fileData is the serialized envelope.
type fileData struct {
	Version  int                 `json:"version"`
	Products []footprint.Product `json:"products"`
}

// ProductStore reads and writes the products file.
type ProductStore struct {
	mu       sync.Mutex
	filePath string
}

// DefaultPath returns ~/.sustaintrack/products.json.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(homeDir, ".sustaintrack", DefaultFileName), nil
}

// NewProductStore creates a store backed by filePath. An empty filePath
// resolves to DefaultPath.
func NewProductStore(filePath string) (*ProductStore, error) {
	if filePath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		filePath = p
	}
	return &ProductStore{filePath: filePath}, nil
}

// FilePath returns the backing file path.
func (s *ProductStore) FilePath() string {
	return s.filePath
}

// Load returns the persisted products in stored order. Any read or decode
// failure degrades to an empty collection.
func (s *ProductStore) Load(ctx context.Context) []footprint.Product {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().
				Str("component", "store").
				Err(err).
				Str("path", s.filePath).
				Msg("products file unreadable, starting empty")
		}
		return []footprint.Product{}
	}

	var stored fileData
	if err = json.Unmarshal(data, &stored); err != nil {
		log.Warn().
			Str("component", "store").
			Err(err).
			Str("path", s.filePath).
			Msg("products file corrupted, starting empty")
		return []footprint.Product{}
	}

	if stored.Version != SchemaVersion {
		log.Warn().
			Str("component", "store").
			Int("version", stored.Version).
			Int("expected", SchemaVersion).
			Str("path", s.filePath).
			Msg("unsupported products file version, starting empty")
		return []footprint.Product{}
	}

	if stored.Products == nil {
		stored.Products = []footprint.Product{}
	}

	log.Debug().
		Str("component", "store").
		Int("count", len(stored.Products)).
		Str("path", s.filePath).
		Msg("products loaded")
	return stored.Products
}

// Save replaces the persisted collection with products.
func (s *ProductStore) Save(ctx context.Context, products []footprint.Product) error {
	unlock, err := s.acquireFileLock()
	if err != nil {
		return err
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if products == nil {
		products = []footprint.Product{}
	}

	data, err := json.MarshalIndent(fileData{Version: SchemaVersion, Products: products}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling products: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(s.filePath), 0o750); mkdirErr != nil {
		return fmt.Errorf("creating products directory: %w", mkdirErr)
	}

	tmpPath := s.filePath + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing products temp file: %w", writeErr)
	}
	if renameErr := os.Rename(tmpPath, s.filePath); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming products temp file: %w", renameErr)
	}

	logging.FromContext(ctx).Debug().
		Str("component", "store").
		Int("count", len(products)).
		Str("path", s.filePath).
		Msg("products saved")
	return nil
}

func (s *ProductStore) lockFilePath() string {
	return s.filePath + ".lock"
}

// acquireFileLock takes an exclusive lockfile, clearing it when its owner is
// gone. The returned func releases the lock.
func (s *ProductStore) acquireFileLock() (func(), error) {
	lockPath := s.lockFilePath()
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	for range lockRetries {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_, _ = fmt.Fprintf(f, "%d", os.Getpid())
			_ = f.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}
		if removeStaleLock(lockPath) {
			continue
		}
		time.Sleep(lockRetryDelay)
	}

	return nil, fmt.Errorf("%w: %s", ErrLockTimeout, lockPath)
}

// removeStaleLock removes lockPath when it is old and its owner process is
// gone. It reports whether the lock was removed.
func removeStaleLock(lockPath string) bool {
	info, err := os.Stat(lockPath)
	if err != nil || time.Since(info.ModTime()) <= staleLockAge {
		return false
	}
	if lockHeldByLiveProcess(lockPath) {
		return false
	}
	_ = os.Remove(lockPath)
	return true
}

func lockHeldByLiveProcess(lockPath string) bool {
	pidData, err := os.ReadFile(lockPath)
	if err != nil || len(pidData) == 0 {
		return false
	}
	var pid int
	if _, scanErr := fmt.Sscanf(string(pidData), "%d", &pid); scanErr != nil || pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 probes for existence without delivering anything.
	return proc.Signal(syscall.Signal(0)) == nil
}
