package service

import (
	"math"
	"strings"

	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
)

// aggregates is the output of one fold over the payment collection.
type aggregates struct {
	TotalRevenue      float64
	TotalTransactions int64

	Today WindowStats
	Week  WindowStats
	Month WindowStats

	PayPal   WindowStats
	Razorpay WindowStats

	ByGateway map[string]int64
}

type WindowStats = salesreportdomain.WindowStats

// aggregatePayments folds payments into per-window and per-gateway totals
// in a single pass. The three window checks are independent: a payment from
// today lands in today, week, and month at once because the windows nest.
// Malformed rows never abort the pass; they degrade to zero contributions
// but still count toward the totals.
func aggregatePayments(payments []salesreportdomain.PaymentRecord, w salesreportdomain.Windows) aggregates {
	agg := aggregates{ByGateway: make(map[string]int64)}

	for _, p := range payments {
		if !eligibleStatus(p.Status) {
			continue
		}

		amount := paymentAmount(p)

		if p.CreatedAt != nil {
			created := *p.CreatedAt
			if !created.Before(w.StartOfDay) {
				agg.Today.Count++
				agg.Today.Revenue += amount
			}
			if !created.Before(w.StartOfWeek) {
				agg.Week.Count++
				agg.Week.Revenue += amount
			}
			if !created.Before(w.StartOfMonth) {
				agg.Month.Count++
				agg.Month.Revenue += amount
			}
		}

		switch gateway := strings.ToLower(p.Gateway); {
		case strings.Contains(gateway, salesreportdomain.GatewayPayPal):
			agg.PayPal.Count++
			agg.PayPal.Revenue += amount
		case strings.Contains(gateway, salesreportdomain.GatewayRazorpay):
			agg.Razorpay.Count++
			agg.Razorpay.Revenue += amount
		}

		if p.Gateway != "" {
			agg.ByGateway[p.Gateway]++
		}

		agg.TotalRevenue += amount
		agg.TotalTransactions++
	}

	return agg
}

// paymentAmount coerces a nullable amount to its revenue contribution.
// Missing or non-finite amounts contribute zero.
func paymentAmount(p salesreportdomain.PaymentRecord) float64 {
	if p.Amount == nil {
		return 0
	}
	amount := *p.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// eligibleStatus accepts success rows and rows with no status at all. The
// loader already filters to success; this only guards against stray rows.
func eligibleStatus(status string) bool {
	return status == "" || status == salesreportdomain.PaymentStatusSuccess
}
