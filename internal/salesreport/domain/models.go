package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	PaymentStatusSuccess = "success"

	GatewayPayPal   = "paypal"
	GatewayRazorpay = "razorpay"

	// RecentTransactionLimit caps the dashboard transaction view. The
	// export view is never capped.
	RecentTransactionLimit = 50

	FallbackUserName  = "Unknown"
	FallbackUserEmail = "N/A"
)

// PaymentRecord is one settled order row. Amount and CreatedAt are nullable
// on purpose: a malformed row degrades to a zero contribution instead of
// failing the whole report pass.
type PaymentRecord struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	UserID    snowflake.ID `json:"user_id" gorm:"not null;index"`
	Amount    *float64     `json:"amount"`
	Currency  string       `json:"currency" gorm:"type:varchar(10)"`
	Gateway   string       `json:"gateway" gorm:"type:text"`
	PlanType  string       `json:"plan_type" gorm:"type:varchar(50)"`
	Status    string       `json:"status" gorm:"type:varchar(20);index"`
	CreatedAt *time.Time   `json:"created_at" gorm:"index"`
}

func (PaymentRecord) TableName() string { return "payments" }

// SubscriptionState is the one-row-per-user subscription ledger. EndDate is
// nil for users who never set up a subscription.
type SubscriptionState struct {
	UserID      snowflake.ID `json:"user_id" gorm:"primaryKey"`
	DisplayName string       `json:"display_name" gorm:"type:text"`
	EndDate     *time.Time   `json:"end_date"`
	Status      string       `json:"status" gorm:"type:varchar(20)"`
}

func (SubscriptionState) TableName() string { return "user_subscriptions" }

// UserIdentity is the display-only email lookup.
type UserIdentity struct {
	UserID snowflake.ID `json:"user_id" gorm:"primaryKey"`
	Email  string       `json:"email" gorm:"type:text"`
}

func (UserIdentity) TableName() string { return "users" }

// WindowStats is a count/revenue pair for one reporting bucket.
type WindowStats struct {
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// GatewayStats breaks revenue down by the two primary gateways. Gateways
// matching neither name appear only in ByGateway and in the totals.
type GatewayStats struct {
	PayPal   WindowStats `json:"paypal"`
	Razorpay WindowStats `json:"razorpay"`
}

// RenewalStats are non-exclusive buckets: a subscription due today also
// counts as due this week.
type RenewalStats struct {
	DueToday    int64 `json:"due_today"`
	DueThisWeek int64 `json:"due_this_week"`
	Missed      int64 `json:"missed"`
}

// TransactionView is a payment enriched with display fields for the
// dashboard and the export.
type TransactionView struct {
	ID        snowflake.ID `json:"id"`
	UserID    snowflake.ID `json:"user_id"`
	UserName  string       `json:"user_name"`
	UserEmail string       `json:"user_email"`
	Amount    float64      `json:"amount"`
	Currency  string       `json:"currency"`
	Gateway   string       `json:"gateway"`
	PlanType  string       `json:"plan_type"`
	CreatedAt *time.Time   `json:"created_at"`
}

// SalesSnapshot is the consolidated point-in-time report. It is recomputed
// on every invocation and never persisted.
type SalesSnapshot struct {
	GeneratedAt        time.Time         `json:"generated_at"`
	TotalRevenue       float64           `json:"total_revenue"`
	TotalTransactions  int64             `json:"total_transactions"`
	SalesToday         WindowStats       `json:"sales_today"`
	SalesWeek          WindowStats       `json:"sales_week"`
	SalesMonth         WindowStats       `json:"sales_month"`
	GatewayStats       GatewayStats      `json:"gateway_stats"`
	ByGateway          map[string]int64  `json:"by_gateway"`
	Renewals           RenewalStats      `json:"renewals"`
	RecentTransactions []TransactionView `json:"recent_transactions"`
	AllTransactions    []TransactionView `json:"all_transactions"`
}
