package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
)

// dashboardResponse is the interactive view: same summary fields as the
// snapshot but only the capped transaction list.
type dashboardResponse struct {
	GeneratedAt        time.Time                           `json:"generated_at"`
	TotalRevenue       float64                             `json:"total_revenue"`
	TotalTransactions  int64                               `json:"total_transactions"`
	SalesToday         salesreportdomain.WindowStats       `json:"sales_today"`
	SalesWeek          salesreportdomain.WindowStats       `json:"sales_week"`
	SalesMonth         salesreportdomain.WindowStats       `json:"sales_month"`
	GatewayStats       salesreportdomain.GatewayStats      `json:"gateway_stats"`
	ByGateway          map[string]int64                    `json:"by_gateway"`
	Renewals           salesreportdomain.RenewalStats      `json:"renewals"`
	RecentTransactions []salesreportdomain.TransactionView `json:"recent_transactions"`
}

// GetSalesSnapshot handles GET /api/v1/sales/snapshot
func (s *Server) GetSalesSnapshot(c *gin.Context) {
	if s.salesReportSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	snapshot, err := s.salesReportSvc.BuildSnapshot(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, dashboardResponse{
		GeneratedAt:        snapshot.GeneratedAt,
		TotalRevenue:       snapshot.TotalRevenue,
		TotalTransactions:  snapshot.TotalTransactions,
		SalesToday:         snapshot.SalesToday,
		SalesWeek:          snapshot.SalesWeek,
		SalesMonth:         snapshot.SalesMonth,
		GatewayStats:       snapshot.GatewayStats,
		ByGateway:          snapshot.ByGateway,
		Renewals:           snapshot.Renewals,
		RecentTransactions: snapshot.RecentTransactions,
	})
}

// ExportSalesReport handles GET /api/v1/sales/export
func (s *Server) ExportSalesReport(c *gin.Context) {
	if s.salesReportSvc == nil || s.salesExportSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	var format salesreportdomain.ExportFormat
	switch strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "pdf"))) {
	case "pdf":
		format = salesreportdomain.ExportFormatPDF
	case "csv":
		format = salesreportdomain.ExportFormatCSV
	default:
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	snapshot, err := s.salesReportSvc.BuildSnapshot(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.salesExportSvc.Export(c.Request.Context(), snapshot, format)
	if err != nil {
		AbortWithError(c, ErrInternal)
		return
	}

	c.Header("X-Sales-Export-Checksum", result.Checksum)
	c.Header("X-Sales-Export-Count", strconv.Itoa(result.Count))

	var contentType string
	filename := "sales_report_" + snapshot.GeneratedAt.Format("20060102")
	switch result.Format {
	case salesreportdomain.ExportFormatPDF:
		contentType = "application/pdf"
		filename += ".pdf"
	case salesreportdomain.ExportFormatCSV:
		contentType = "text/csv"
		filename += ".csv"
	}

	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(http.StatusOK, contentType, result.Data)
}
