package services

import (
	"bytes"
	"fmt"
	"time"

	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"
)

// exportTimeLayout matches an ISO-8601 timestamp truncated to whole seconds
const exportTimeLayout = "2006-01-02T15:04:05"

// CSVExporter renders a collection as CSV. Columns come from the first
// record only; keys that appear only in later records are not exported.
type CSVExporter struct {
	now func() time.Time
}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{now: time.Now}
}

// NothingToExport is the info notice returned for an empty collection
func NothingToExport(entity models.EntityType) error {
	return consoleErrors.Validation(fmt.Sprintf("No %s to export", entity.Label())).
		WithCode(consoleErrors.ConsoleNothingToExport)
}

func (e *CSVExporter) Export(entity models.EntityType, c models.Collection) (*models.CSVExport, error) {
	if len(c) == 0 {
		return nil, NothingToExport(entity)
	}

	columns := columnsOf(c)

	var buf bytes.Buffer
	for i, col := range columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(col)
	}

	for _, r := range c {
		buf.WriteByte('\n')
		for i, col := range columns {
			if i > 0 {
				buf.WriteByte(',')
			}
			cell, err := encodeCell(r, col)
			if err != nil {
				return nil, fmt.Errorf("export %s column %q: %w", entity, col, err)
			}
			buf.Write(cell)
		}
	}

	return &models.CSVExport{
		Filename:    fmt.Sprintf("%s_%s.csv", entity, e.now().UTC().Format(exportTimeLayout)),
		ContentType: models.CSVContentType,
		Columns:     columns,
		Rows:        len(c),
		Data:        buf.Bytes(),
	}, nil
}

// encodeCell JSON-encodes one value; missing and null values become ""
func encodeCell(r *models.Record, key string) ([]byte, error) {
	v, ok := r.Get(key)
	if !ok || v == nil {
		v = ""
	}
	return models.EncodeJSON(v)
}
