package service

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
)

func ts(y int, m time.Month, d, h int) *time.Time {
	t := time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	return &t
}

func amount(v float64) *float64 { return &v }

func payment(id int64, amt *float64, gateway string, createdAt *time.Time) salesreportdomain.PaymentRecord {
	return salesreportdomain.PaymentRecord{
		ID:        snowflake.ID(id),
		UserID:    snowflake.ID(id + 1000),
		Amount:    amt,
		Currency:  "INR",
		Gateway:   gateway,
		Status:    salesreportdomain.PaymentStatusSuccess,
		CreatedAt: createdAt,
	}
}

func testWindows() salesreportdomain.Windows {
	return salesreportdomain.ComputeWindows(time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC))
}

func TestAggregatePaymentsWindowsAndGateways(t *testing.T) {
	payments := []salesreportdomain.PaymentRecord{
		payment(1, amount(100), "Razorpay", ts(2024, time.June, 12, 9)),
		payment(2, amount(50), "PayPal", ts(2024, time.June, 5, 9)),
		payment(3, amount(200), "Unknown", ts(2024, time.May, 1, 9)),
	}

	agg := aggregatePayments(payments, testWindows())

	require.Equal(t, 350.0, agg.TotalRevenue)
	require.Equal(t, int64(3), agg.TotalTransactions)

	require.Equal(t, WindowStats{Count: 1, Revenue: 100}, agg.Today)
	// June 5th predates the Sunday week start (June 9th); only the June
	// 12th payment lands in the week bucket.
	require.Equal(t, WindowStats{Count: 1, Revenue: 100}, agg.Week)
	require.Equal(t, WindowStats{Count: 2, Revenue: 150}, agg.Month)

	require.Equal(t, WindowStats{Count: 1, Revenue: 100}, agg.Razorpay)
	require.Equal(t, WindowStats{Count: 1, Revenue: 50}, agg.PayPal)
	require.Equal(t, int64(1), agg.ByGateway["Unknown"])
	require.Equal(t, int64(1), agg.ByGateway["Razorpay"])
	require.Equal(t, int64(1), agg.ByGateway["PayPal"])
}

func TestAggregatePaymentsWindowsNest(t *testing.T) {
	// A payment from today lands in today, week, and month at once.
	payments := []salesreportdomain.PaymentRecord{
		payment(1, amount(75), "razorpay checkout", ts(2024, time.June, 12, 1)),
	}

	agg := aggregatePayments(payments, testWindows())

	require.Equal(t, WindowStats{Count: 1, Revenue: 75}, agg.Today)
	require.Equal(t, WindowStats{Count: 1, Revenue: 75}, agg.Week)
	require.Equal(t, WindowStats{Count: 1, Revenue: 75}, agg.Month)
}

func TestAggregatePaymentsMonthBoundaryInclusive(t *testing.T) {
	// Exactly startOfMonth, before startOfWeek: month only.
	payments := []salesreportdomain.PaymentRecord{
		payment(1, amount(10), "paypal", ts(2024, time.June, 1, 0)),
	}

	agg := aggregatePayments(payments, testWindows())

	require.Equal(t, int64(0), agg.Today.Count)
	require.Equal(t, int64(0), agg.Week.Count)
	require.Equal(t, WindowStats{Count: 1, Revenue: 10}, agg.Month)
}

func TestAggregatePaymentsMalformedRows(t *testing.T) {
	payments := []salesreportdomain.PaymentRecord{
		payment(1, nil, "paypal", ts(2024, time.June, 12, 9)), // no amount
		payment(2, amount(40), "razorpay", nil),               // no timestamp
		payment(3, amount(0), "", ts(2024, time.June, 12, 8)), // zero amount, no gateway
	}

	agg := aggregatePayments(payments, testWindows())

	// Every row counts toward the total regardless of malformed fields.
	require.Equal(t, int64(3), agg.TotalTransactions)
	require.Equal(t, 40.0, agg.TotalRevenue)

	// The nil-amount row still matches its window and gateway buckets.
	require.Equal(t, WindowStats{Count: 1, Revenue: 0}, agg.PayPal)
	require.Equal(t, int64(2), agg.Today.Count)

	// The nil-timestamp row is excluded from every window but still hits
	// its gateway bucket.
	require.Equal(t, WindowStats{Count: 1, Revenue: 40}, agg.Razorpay)

	// Empty gateway names stay out of the raw breakdown.
	require.NotContains(t, agg.ByGateway, "")
}

func TestAggregatePaymentsSkipsNonSuccess(t *testing.T) {
	failed := payment(1, amount(500), "paypal", ts(2024, time.June, 12, 9))
	failed.Status = "failed"

	agg := aggregatePayments([]salesreportdomain.PaymentRecord{
		failed,
		payment(2, amount(100), "paypal", ts(2024, time.June, 12, 9)),
	}, testWindows())

	require.Equal(t, int64(1), agg.TotalTransactions)
	require.Equal(t, 100.0, agg.TotalRevenue)
}

func TestAggregatePaymentsGatewayMatchIsSubstring(t *testing.T) {
	payments := []salesreportdomain.PaymentRecord{
		payment(1, amount(10), "PayPal Express", ts(2024, time.June, 12, 9)),
		payment(2, amount(20), "RAZORPAY-UPI", ts(2024, time.June, 12, 9)),
	}

	agg := aggregatePayments(payments, testWindows())

	require.Equal(t, int64(1), agg.PayPal.Count)
	require.Equal(t, int64(1), agg.Razorpay.Count)
}

func TestAggregatePaymentsEmptyCollection(t *testing.T) {
	agg := aggregatePayments(nil, testWindows())

	require.Equal(t, int64(0), agg.TotalTransactions)
	require.Equal(t, 0.0, agg.TotalRevenue)
	require.Empty(t, agg.ByGateway)
}
