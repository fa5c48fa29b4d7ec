package domain

import "context"

// ExportFormat represents the output format for sales report exports.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult contains the rendered document and metadata.
type ExportResult struct {
	Data     []byte
	Checksum string
	Format   ExportFormat
	Count    int
}

// ExportService renders a snapshot into a downloadable document. It is a
// pure formatter: it performs no aggregation of its own and reports the
// snapshot's numbers verbatim.
type ExportService interface {
	Export(ctx context.Context, snapshot *SalesSnapshot, format ExportFormat) (*ExportResult, error)
}
