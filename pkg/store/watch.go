package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a burst of writes must be quiet before it is reported.
const settle = 100 * time.Millisecond

// Event reports that a tracker key was rewritten by another process. An
// empty Key asks the reader to reload every key.
type Event struct {
	Key string
}

// Watcher is implemented by gateways that can report external writes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Watch reports changes to the tracker's key files until ctx is done, at
// which point the channel is closed. Each key is reported at most once per
// burst of writes.
func (g *DiskvGateway) Watch(ctx context.Context) (<-chan Event, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := w.Add(g.basePath); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("store: watch %s: %w", g.basePath, err)
	}

	tracked := make(map[string]bool, len(Keys()))
	for _, k := range Keys() {
		tracked[k] = true
	}

	out := make(chan Event, len(tracked)+1)
	go func() {
		defer close(out)
		defer w.Close()

		dirty := map[string]bool{}
		timer := time.NewTimer(settle)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		mark := func(key string) {
			if len(dirty) == 0 {
				timer.Reset(settle)
			}
			dirty[key] = true
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
				for key := range dirty {
					select {
					case out <- Event{Key: key}:
					default:
						// reader is behind; it reloads everything anyway
					}
				}
				dirty = map[string]bool{}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
				mark("")
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if key := filepath.Base(ev.Name); tracked[key] {
					mark(key)
				}
			}
		}
	}()
	return out, nil
}
