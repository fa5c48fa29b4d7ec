package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tradeloghq/tradelog/internal/clock"
	"github.com/tradeloghq/tradelog/internal/observability/metrics"
	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
	"github.com/tradeloghq/tradelog/internal/salesreport/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	clock   clock.Clock
	repo    salesreportdomain.Repository
	metrics *metrics.ReportMetrics
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
}

func NewService(p ServiceParam) salesreportdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("salesreport.service"),

		clock:   p.Clock,
		repo:    repository.NewRepository(),
		metrics: metrics.Report(),
	}
}

// BuildSnapshot loads the payment and subscription collections, folds them
// against window boundaries derived from a single captured instant, and
// assembles the consolidated snapshot. A failed load aborts the whole
// invocation; no partial snapshot is returned.
func (s *Service) BuildSnapshot(ctx context.Context) (*salesreportdomain.SalesSnapshot, error) {
	started := time.Now()

	now := s.clock.Now(ctx)
	windows := salesreportdomain.ComputeWindows(now)

	payments, states, identities, err := s.loadCollections(ctx)
	if err != nil {
		s.metrics.ObserveBuild("error", time.Since(started))
		return nil, err
	}

	agg := aggregatePayments(payments, windows)
	renewals := classifyRenewals(states, windows)
	transactions := enrichTransactions(payments, states, identities)

	snapshot := &salesreportdomain.SalesSnapshot{
		GeneratedAt:        now,
		TotalRevenue:       agg.TotalRevenue,
		TotalTransactions:  agg.TotalTransactions,
		SalesToday:         agg.Today,
		SalesWeek:          agg.Week,
		SalesMonth:         agg.Month,
		GatewayStats:       salesreportdomain.GatewayStats{PayPal: agg.PayPal, Razorpay: agg.Razorpay},
		ByGateway:          agg.ByGateway,
		Renewals:           renewals,
		RecentTransactions: capTransactions(transactions, salesreportdomain.RecentTransactionLimit),
		AllTransactions:    transactions,
	}

	s.metrics.ObserveBuild("ok", time.Since(started))
	s.log.Debug("snapshot built",
		zap.Int64("total_transactions", snapshot.TotalTransactions),
		zap.Float64("total_revenue", snapshot.TotalRevenue),
	)
	return snapshot, nil
}

// loadCollections fetches the three inputs concurrently; they are
// independent reads.
func (s *Service) loadCollections(ctx context.Context) (
	[]salesreportdomain.PaymentRecord,
	[]salesreportdomain.SubscriptionState,
	[]salesreportdomain.UserIdentity,
	error,
) {
	var (
		payments   []salesreportdomain.PaymentRecord
		states     []salesreportdomain.SubscriptionState
		identities []salesreportdomain.UserIdentity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if payments, err = s.repo.ListSuccessfulPayments(gctx, s.db); err != nil {
			return fmt.Errorf("%w: %v", salesreportdomain.ErrLoadPayments, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if states, err = s.repo.ListSubscriptionStates(gctx, s.db, nil); err != nil {
			return fmt.Errorf("%w: %v", salesreportdomain.ErrLoadSubscriptions, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if identities, err = s.repo.ListIdentities(gctx, s.db); err != nil {
			return fmt.Errorf("%w: %v", salesreportdomain.ErrLoadIdentities, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return payments, states, identities, nil
}

// enrichTransactions joins payments with display names and emails via
// userId-keyed maps built once per invocation, then orders the result most
// recent first. A missing lookup degrades that row's display fields only.
func enrichTransactions(
	payments []salesreportdomain.PaymentRecord,
	states []salesreportdomain.SubscriptionState,
	identities []salesreportdomain.UserIdentity,
) []salesreportdomain.TransactionView {
	names := make(map[snowflake.ID]string, len(states))
	for _, state := range states {
		names[state.UserID] = state.DisplayName
	}
	emails := make(map[snowflake.ID]string, len(identities))
	for _, identity := range identities {
		emails[identity.UserID] = identity.Email
	}

	views := make([]salesreportdomain.TransactionView, 0, len(payments))
	for _, p := range payments {
		if !eligibleStatus(p.Status) {
			continue
		}
		views = append(views, salesreportdomain.TransactionView{
			ID:        p.ID,
			UserID:    p.UserID,
			UserName:  lookupOr(names, p.UserID, salesreportdomain.FallbackUserName),
			UserEmail: lookupOr(emails, p.UserID, salesreportdomain.FallbackUserEmail),
			Amount:    paymentAmount(p),
			Currency:  p.Currency,
			Gateway:   p.Gateway,
			PlanType:  p.PlanType,
			CreatedAt: p.CreatedAt,
		})
	}

	// Sorted once; the capped view reuses this order without re-sorting.
	sort.SliceStable(views, func(i, j int) bool {
		return viewTime(views[i]).After(viewTime(views[j]))
	})
	return views
}

func lookupOr(m map[snowflake.ID]string, id snowflake.ID, fallback string) string {
	if v, ok := m[id]; ok && v != "" {
		return v
	}
	return fallback
}

// viewTime orders rows with no timestamp last.
func viewTime(v salesreportdomain.TransactionView) time.Time {
	if v.CreatedAt == nil {
		return time.Time{}
	}
	return *v.CreatedAt
}

func capTransactions(views []salesreportdomain.TransactionView, limit int) []salesreportdomain.TransactionView {
	if len(views) <= limit {
		return views
	}
	return views[:limit]
}
