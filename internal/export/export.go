package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Lumos-Labs-HQ/shopgen/internal/model"
)

// Write serializes the dataset to dir in the requested format and returns the
// paths written, in write order.
func Write(ds *model.Dataset, dir, format string) ([]string, error) {
	switch format {
	case "json":
		return WriteJSON(ds, dir)
	case "sqlite":
		return WriteSQLite(ds, dir)
	default:
		return WriteCSV(ds, dir)
	}
}

// WriteCSV writes one file per collection: users.csv, products.csv,
// orders.csv, order_items.csv. Each file gets a header row and one row per
// record in generation order; existing files are overwritten. A collection is
// flushed in full before the next one begins.
func WriteCSV(ds *model.Dataset, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var paths []string
	for _, table := range ds.Tables() {
		path := filepath.Join(dir, table.Name+".csv")
		if err := writeTableCSV(table, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeTableCSV(table model.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", table.Name, err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", table.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

type jsonDocument struct {
	Timestamp string         `json:"timestamp"`
	Version   string         `json:"version"`
	Dataset   *model.Dataset `json:"dataset"`
}

// WriteJSON writes the whole dataset as a single indented JSON document.
func WriteJSON(ds *model.Dataset, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	doc := jsonDocument{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Version:   "1.0",
		Dataset:   ds,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dataset: %w", err)
	}

	path := filepath.Join(dir, "dataset.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return []string{path}, nil
}
