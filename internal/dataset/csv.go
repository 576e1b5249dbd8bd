package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a CSV file into a table. Rows whose field count does not match
// the header are dropped; the second return value reports how many.
func Load(name, path string) (*Table, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()
	return Read(name, file)
}

// Read reads CSV content into a table.
func Read(name string, r io.Reader) (*Table, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("read %s: empty file", name)
		}
		return nil, 0, fmt.Errorf("read %s header: %w", name, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table, err := New(name, header)
	if err != nil {
		return nil, 0, err
	}

	dropped := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				dropped++
				continue
			}
			return nil, dropped, fmt.Errorf("read %s: %w", name, err)
		}
		if len(record) != table.ColumnCount() {
			dropped++
			continue
		}
		table.rows = append(table.rows, record)
	}
	return table, dropped, nil
}

// Save writes the table to a CSV file, creating parent directories.
func (t *Table) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := t.Write(file); err != nil {
		return err
	}
	return file.Close()
}

// Write writes the table as CSV to the provided writer.
func (t *Table) Write(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.columns); err != nil {
		return fmt.Errorf("write %s header: %w", t.name, err)
	}
	for _, row := range t.rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write %s row: %w", t.name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", t.name, err)
	}
	return nil
}
