package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
)

// Service renders a built snapshot into a downloadable document. It never
// recomputes anything: every number comes verbatim from the snapshot.
type Service struct{}

func NewService() salesreportdomain.ExportService {
	return &Service{}
}

func (s *Service) Export(ctx context.Context, snapshot *salesreportdomain.SalesSnapshot, format salesreportdomain.ExportFormat) (*salesreportdomain.ExportResult, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("nil snapshot")
	}

	var data []byte
	var err error

	switch format {
	case salesreportdomain.ExportFormatCSV:
		data, err = formatCSV(snapshot)
	case salesreportdomain.ExportFormatPDF:
		data, err = formatPDF(snapshot)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	return &salesreportdomain.ExportResult{
		Data:     data,
		Checksum: calculateChecksum(data),
		Format:   format,
		Count:    len(snapshot.AllTransactions),
	}, nil
}

func formatCSV(snapshot *salesreportdomain.SalesSnapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"created_at",
		"transaction_id",
		"user_name",
		"user_email",
		"amount",
		"currency",
		"gateway",
		"plan_type",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, tx := range snapshot.AllTransactions {
		row := []string{
			formatTimePtr(tx.CreatedAt),
			tx.ID.String(),
			tx.UserName,
			tx.UserEmail,
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			tx.Currency,
			tx.Gateway,
			tx.PlanType,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func calculateChecksum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
