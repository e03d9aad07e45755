package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tokogrand/pos-register/internal/core/port"
)

// FileStore writes one plain-text receipt per committed sale into a flat
// directory, named by transaction id so reprints overwrite rather than
// accumulate.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) port.ReceiptStorePort {
	return &FileStore{dir: dir}
}

func (s *FileStore) Save(ctx context.Context, transactionID string, body []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("receipt dir %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, "receipt_"+transactionID+".txt")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("receipt write %s: %w", path, err)
	}
	return path, nil
}
