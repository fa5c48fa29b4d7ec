package service

import (
	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
)

// classifyRenewals folds the full subscription ledger into the three
// renewal buckets. The checks are independent yes/no tests, not a
// partition: a subscription ending today counts as both due today and due
// this week. Both week boundaries are inclusive.
func classifyRenewals(states []salesreportdomain.SubscriptionState, w salesreportdomain.Windows) salesreportdomain.RenewalStats {
	var stats salesreportdomain.RenewalStats

	for _, state := range states {
		if state.EndDate == nil {
			continue
		}
		end := salesreportdomain.StartOfDay(*state.EndDate)

		if end.Equal(w.Today) {
			stats.DueToday++
		}
		if !end.Before(w.Today) && !end.After(w.NextWeek) {
			stats.DueThisWeek++
		}
		if end.Before(w.Today) && !end.Before(w.LastWeek) {
			stats.Missed++
		}
	}

	return stats
}
