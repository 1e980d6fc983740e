package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	path    string
	backend string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) Backend() string  { return t.backend }
func (t testConfig) Name() string     { return "study-test" }

func exerciseGateway(t *testing.T, g Gateway) {
	t.Helper()
	if _, err := g.Load(DeadlinesKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}
	if err := g.Save(DeadlinesKey, []byte(`[{"topic":"a"}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := g.Save(DeadlinesKey, []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := g.Load(DeadlinesKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("expected overwritten value, got %s", got)
	}
	if _, err := g.Load(SubjectsKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("keys must be independent, got %v", err)
	}
}

func TestMemoryGateway(t *testing.T) {
	g := NewMemory()
	exerciseGateway(t, g)
	if g.Saves() != 2 {
		t.Fatalf("expected 2 saves, got %d", g.Saves())
	}
	g.FailSave = errors.New("disk full")
	if err := g.Save(SubjectsKey, []byte(`[]`)); err == nil {
		t.Fatalf("expected injected failure")
	}
}

func TestDiskvGateway(t *testing.T) {
	base := filepath.Join(t.TempDir(), "db")
	g, err := OpenDiskv(base)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer g.Close()
	exerciseGateway(t, g)

	if _, err := os.Stat(filepath.Join(base, DeadlinesKey)); err != nil {
		t.Fatalf("expected key file on disk: %v", err)
	}

	reopened, err := OpenDiskv(base)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Load(DeadlinesKey)
	if err != nil || string(got) != `[]` {
		t.Fatalf("expected persisted value, got %q (%v)", got, err)
	}
}

func TestOpenDiskvRequiresPath(t *testing.T) {
	if _, err := OpenDiskv(""); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}

func TestSQLiteGateway(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.sqlite")
	g, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseGateway(t, g)
	if err := g.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Load(DeadlinesKey)
	if err != nil || string(got) != `[]` {
		t.Fatalf("expected persisted value, got %q (%v)", got, err)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	g, err := Open(testConfig{path: filepath.Join(dir, "kv"), backend: ""})
	if err != nil {
		t.Fatalf("open default: %v", err)
	}
	if _, ok := g.(*DiskvGateway); !ok {
		t.Fatalf("expected diskv by default, got %T", g)
	}

	g, err = Open(testConfig{backend: "MEMORY"})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := g.(*MemoryGateway); !ok {
		t.Fatalf("expected memory gateway, got %T", g)
	}

	g, err = Open(testConfig{path: filepath.Join(dir, "s.db"), backend: BackendSQLite})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer g.Close()
	if _, ok := g.(*SQLiteGateway); !ok {
		t.Fatalf("expected sqlite gateway, got %T", g)
	}

	if _, err := Open(testConfig{backend: "floppy"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".study.yaml")
	if err := os.WriteFile(cfgFile, []byte("path: "+filepath.Join(dir, "data")+"\nbackend: sqlite\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("STUDY_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "data") || cfg.Backend() != BackendSQLite {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Name() != "study" {
		t.Fatalf("expected default kv name, got %q", cfg.Name())
	}

	t.Setenv("STUDY_BACKEND", "memory")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend() != BackendMemory {
		t.Fatalf("expected env override, got %q", cfg.Backend())
	}
}

func TestLoadConfigExpandsHome(t *testing.T) {
	t.Setenv("STUDY_CONFIG_PATH", t.TempDir())
	t.Setenv("STUDY_PATH", "~/tracker")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() == "~/tracker" || filepath.Base(cfg.BasePath()) != "tracker" {
		t.Fatalf("expected expanded home path, got %q", cfg.BasePath())
	}
}

func TestDiskvWatchEmitsKeyChanges(t *testing.T) {
	g, err := OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := g.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := g.Save(SubjectsKey, []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	timeout := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == "" || evt.Key == SubjectsKey {
				return
			}
			t.Fatalf("unexpected key %q", evt.Key)
		case <-timeout:
			t.Fatal("timed out waiting for change event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	g, err := OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := g.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("channel not closed after cancel")
		}
	}
}
