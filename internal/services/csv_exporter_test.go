package services

import (
	"testing"
	"time"

	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExporter() *CSVExporter {
	e := NewCSVExporter()
	e.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 987, time.UTC) }
	return e
}

func TestCSVExporter_Basic(t *testing.T) {
	out, err := newTestExporter().Export(models.EntityTransactions, models.Collection{
		models.RecordOf("a", float64(1), "b", float64(2)),
		models.RecordOf("a", float64(3), "b", float64(4)),
	})
	require.NoError(t, err)

	assert.Equal(t, "a,b\n1,2\n3,4", string(out.Data))
	assert.Equal(t, "transactions_2024-01-01T12:00:00.csv", out.Filename)
	assert.Equal(t, "text/csv;charset=utf-8", out.ContentType)
	assert.Equal(t, 2, out.Rows)
}

func TestCSVExporter_ExcludesPassword(t *testing.T) {
	out, err := newTestExporter().Export(models.EntityUsers, models.Collection{
		models.RecordOf("id", float64(1), "password", "x", "name", "bob"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, out.Columns)
	assert.Equal(t, "id,name\n1,\"bob\"", string(out.Data))
}

func TestCSVExporter_CellsAreJSONEncoded(t *testing.T) {
	out, err := newTestExporter().Export(models.EntityAccounts, models.Collection{
		models.RecordOf("note", "a,\"b\"\nc", "flag", true, "owner", models.RecordOf("a", float64(1)), "missing", nil),
	})
	require.NoError(t, err)

	assert.Equal(t, "note,flag,owner,missing\n\"a,\\\"b\\\"\\nc\",true,{\"a\":1},\"\"", string(out.Data))
}

func TestCSVExporter_ColumnsFromFirstRecordOnly(t *testing.T) {
	out, err := newTestExporter().Export(models.EntityLoans, models.Collection{
		models.RecordOf("a", float64(1)),
		models.RecordOf("b", float64(2), "a", float64(3)),
	})
	require.NoError(t, err)

	assert.Equal(t, "a\n1\n3", string(out.Data))
}

func TestCSVExporter_Empty(t *testing.T) {
	_, err := newTestExporter().Export(models.EntityUsers, models.Collection{})
	require.Error(t, err)

	ce, ok := consoleErrors.AsConsoleError(err)
	require.True(t, ok)
	assert.Equal(t, consoleErrors.ConsoleNothingToExport, ce.Code())
	assert.Equal(t, "No users to export", ce.Message)
}
