package session

import "fmt"

// Backend identifiers accepted by NewStore.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// NewStore binds exactly one backend for the lifetime of the returned
// handle. The choice is injected by configuration instead of probed from
// the environment, so both paths stay independently testable.
func NewStore(backend, dsn, dataDir string) (Store, error) {
	switch backend {
	case BackendSQLite:
		return NewSQLiteStore(dsn), nil
	case BackendFile:
		return NewFileStore(dataDir), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", backend)
	}
}
