// Package store provides the key-value persistence gateway the tracker
// loads from at startup and writes to after every mutation.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// Storage keys for the three persisted stores.
const (
	DeadlinesKey      = "studyTracker.deadlines"
	SubjectsKey       = "studyTracker.subjects"
	CompletedDatesKey = "studyTracker.completedDates"
)

// Keys lists every key the tracker persists.
func Keys() []string {
	return []string{DeadlinesKey, SubjectsKey, CompletedDatesKey}
}

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Gateway is an opaque blob store keyed by namespace.
type Gateway interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// Open builds the gateway selected by cfg. A nil cfg is read with
// LoadConfig.
func Open(cfg Config) (Gateway, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch strings.ToLower(cfg.Backend()) {
	case "", BackendDiskv:
		return OpenDiskv(cfg.BasePath())
	case BackendSQLite:
		return OpenSQLite(cfg.BasePath())
	case BackendCharm:
		return OpenCharm(cfg.Name())
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
}
