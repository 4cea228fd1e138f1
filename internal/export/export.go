package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/flashseed/internal/dataset"
)

// CSVPath is where a table's CSV lands inside dir.
func CSVPath(dir, table string) string {
	return filepath.Join(dir, fmt.Sprintf("%s.csv", table))
}

// WriteCSV replaces the file at path with the dataset: a header of column
// names followed by one record per row, no index column.
func WriteCSV(ds *dataset.Dataset, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove existing %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file for %s: %w", ds.Table, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(ds.ColumnNames()); err != nil {
		file.Close()
		return fmt.Errorf("failed to write CSV header for %s: %w", ds.Table, err)
	}
	if err := writer.WriteAll(ds.Records()); err != nil {
		file.Close()
		return fmt.Errorf("failed to write CSV rows for %s: %w", ds.Table, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close CSV file for %s: %w", ds.Table, err)
	}
	return nil
}

// WriteAll writes every dataset to dir and returns the written paths in order.
func WriteAll(datasets []*dataset.Dataset, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	paths := make([]string, 0, len(datasets))
	for _, ds := range datasets {
		path := CSVPath(dir, ds.Table)
		if err := WriteCSV(ds, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
