package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Row is one tabular record keyed by its header column.
type Row map[string]string

// Get returns the trimmed value for key, or fallback when the column is
// missing or blank. Blank source fields degrade to defaults instead of
// failing the load.
func (r Row) Get(key, fallback string) string {
	value, ok := r[key]
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// GetInt returns the value for key parsed as an int, or fallback when the
// column is missing or unparsable.
func (r Row) GetInt(key string, fallback int) int {
	value, ok := r[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

// CatalogueReader provides the two tabular sources the repository ingests.
type CatalogueReader interface {
	Podcasts() ([]Row, error)
	Episodes() ([]Row, error)
}

// CSVReader reads podcasts and episodes from two header-led CSV files.
type CSVReader struct {
	podcastsPath string
	episodesPath string
}

// NewCSVReader creates a CSVReader over the given file paths.
func NewCSVReader(podcastsPath, episodesPath string) *CSVReader {
	return &CSVReader{podcastsPath: podcastsPath, episodesPath: episodesPath}
}

// Podcasts returns every podcast row.
func (r *CSVReader) Podcasts() ([]Row, error) {
	return readRows(r.podcastsPath)
}

// Episodes returns every episode row.
func (r *CSVReader) Episodes() ([]Row, error) {
	return readRows(r.episodesPath)
}

func readRows(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Tolerate ragged rows; short rows get empty values for the
	// trailing columns.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
