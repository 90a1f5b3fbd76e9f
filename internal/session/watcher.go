// Package session tracks the signed-in user published through the
// observable store.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"parley/api/internal/kvstore"
)

// StoreKey is the store key the session record lives under.
const StoreKey = "session"

// payload is the wire shape of the session record.
type payload struct {
	Email string `json:"email"`
}

// Watcher caches the current session email and keeps it fresh from the
// store's update stream. An empty email means nobody is signed in.
type Watcher struct {
	mu    sync.RWMutex
	email string

	sub  *kvstore.Subscription
	done chan struct{}
}

// Watch seeds the watcher from the store's current session record and
// starts following updates. Close the watcher to stop.
func Watch(ctx context.Context, store *kvstore.Store) (*Watcher, error) {
	w := &Watcher{done: make(chan struct{})}

	value, err := store.Get(ctx, StoreKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	w.apply(value)

	sub, err := store.Subscribe(ctx, StoreKey)
	if err != nil {
		return nil, fmt.Errorf("watch session: %w", err)
	}
	w.sub = sub

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for value := range w.sub.Updates() {
		w.apply(value)
	}
}

// apply replaces the cached email with the record's. An empty record
// means signed out; a record that does not parse leaves the cache alone.
func (w *Watcher) apply(value string) {
	var email string
	if value != "" {
		var p payload
		if err := json.Unmarshal([]byte(value), &p); err != nil {
			log.Printf("session: dropping malformed record: %v", err)
			return
		}
		email = p.Email
	}

	w.mu.Lock()
	w.email = email
	w.mu.Unlock()
}

// Email returns the signed-in user's email, or the empty string when
// nobody is signed in.
func (w *Watcher) Email() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.email
}

// Close stops following updates and waits for the last one to land.
func (w *Watcher) Close() error {
	err := w.sub.Close()
	<-w.done
	return err
}
