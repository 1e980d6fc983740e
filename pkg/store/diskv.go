package store

import (
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvGateway stores each key as one file under a base directory.
type DiskvGateway struct {
	d        *diskv.Diskv
	basePath string
}

// OpenDiskv creates a gateway rooted at basePath.
func OpenDiskv(basePath string) (*DiskvGateway, error) {
	if basePath == "" {
		return nil, fmt.Errorf("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskvGateway{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// BasePath is the directory holding the key files.
func (g *DiskvGateway) BasePath() string {
	return g.basePath
}

func (g *DiskvGateway) Load(key string) ([]byte, error) {
	if !g.d.Has(key) {
		return nil, ErrNotFound
	}
	val, err := g.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (g *DiskvGateway) Save(key string, value []byte) error {
	if err := g.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; every Save is already on disk.
func (g *DiskvGateway) Close() error {
	return nil
}

// Keys are flat file names inside the base directory.
func flatTransform(string) []string {
	return []string{}
}
