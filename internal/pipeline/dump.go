package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

// WriteDump saves the deduplicated row set as an indented UTF-8 JSON
// array for manual review. The dump is the same data handed to
// storage, not a distinct format, and it is written even when the
// remote upsert fails so a run is never a total loss.
func WriteDump(path string, rows []domain.Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// ReadDump loads a previous run's dump, used for the delta report.
func ReadDump(path string) ([]domain.Row, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows []domain.Row
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
