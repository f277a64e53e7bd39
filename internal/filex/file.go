// Package filex holds small filesystem helpers.
package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir (and parents) if it does not exist and returns the
// path back. Safe to call on every startup.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
