package store

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/charm/kv"
)

// CharmGateway stores keys in a Charm Cloud backed key-value database,
// syncing before reads and after writes.
type CharmGateway struct {
	db *kv.KV
}

// OpenCharm opens (or creates) the named Charm KV database.
func OpenCharm(name string) (*CharmGateway, error) {
	if name == "" {
		name = "study"
	}
	db, err := kv.OpenWithDefaults(name)
	if err != nil {
		return nil, fmt.Errorf("store: open charm kv: %w", err)
	}
	if err := db.Sync(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: sync charm kv: %w", err)
	}
	return &CharmGateway{db: db}, nil
}

func (g *CharmGateway) Load(key string) ([]byte, error) {
	keys, err := g.db.Keys()
	if err != nil {
		return nil, fmt.Errorf("store: list charm keys: %w", err)
	}
	found := false
	for _, k := range keys {
		if bytes.Equal(k, []byte(key)) {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}
	val, err := g.db.Get([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (g *CharmGateway) Save(key string, value []byte) error {
	if err := g.db.Set([]byte(key), value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (g *CharmGateway) Close() error {
	return g.db.Close()
}
