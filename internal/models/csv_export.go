package models

// CSVContentType is the MIME type of every console export
const CSVContentType = "text/csv;charset=utf-8"

// CSVExport is a client-generated export file
type CSVExport struct {
	Filename    string
	ContentType string
	Columns     []string
	Rows        int
	Data        []byte
}
