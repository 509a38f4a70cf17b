// internal/domain/cart/local_store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// localKeyPrefix is the fixed storage key the local variant persists under
const localKeyPrefix = "darling_cart_"

// LocalStore persists each session's cart as a single JSON file under a
// fixed directory. It is the no-network variant of the cart store: reads
// that fail for any reason degrade to an empty cart rather than an error,
// matching the behavior of unreadable browser-local storage.
type LocalStore struct {
	dir string
}

// NewLocalStore creates a file-backed cart store rooted at dir
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart storage directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(sessionID string) string {
	return filepath.Join(s.dir, localKeyPrefix+sessionID+".json")
}

// Get retrieves the cart for a session. Missing, unreadable or corrupt
// storage yields a fresh empty cart.
func (s *LocalStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		return NewCart(sessionID), nil
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return NewCart(sessionID), nil
	}

	return &c, nil
}

// Save writes the cart atomically, temp file then rename
func (s *LocalStore) Save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, localKeyPrefix+"*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create cart file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cart file: %w", err)
	}

	return os.Rename(tmp.Name(), s.path(c.SessionID))
}

// Delete removes the cart file; a missing file is not an error
func (s *LocalStore) Delete(ctx context.Context, sessionID string) error {
	err := os.Remove(s.path(sessionID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
