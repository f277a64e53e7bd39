package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// sessionKey is the fixed key the session document lives under.
const sessionKey = "user_session"

// FileStore keeps the session as one JSON document under a fixed key in a
// local directory. It is the flat key-value counterpart to SQLiteStore.
type FileStore struct {
	dir string
}

// NewFileStore builds a store writing into dir. The directory must already
// exist.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path() string {
	return filepath.Join(f.dir, sessionKey+".json")
}

// Init is a no-op for the file backend; there is no schema to prepare.
func (f *FileStore) Init(ctx context.Context) error {
	return nil
}

// Save serializes sess and overwrites the fixed key. The write goes through
// a temp file and rename so a crash never leaves a half-written session.
func (f *FileStore) Save(ctx context.Context, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp := f.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, f.path()); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Load reads and decodes the stored session. A missing file means no
// session, (nil, nil). An unreadable or corrupt file is reported as an
// error so the caller can tell failure from absence.
func (f *FileStore) Load(ctx context.Context) (*Session, error) {
	data, err := os.ReadFile(f.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &sess, nil
}

// Clear removes the key. Clearing an already empty store succeeds.
func (f *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(f.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
