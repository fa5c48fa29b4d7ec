package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
	"gorm.io/gorm"
)

type repo struct{}

func NewRepository() salesreportdomain.Repository {
	return &repo{}
}

func (r *repo) ListSuccessfulPayments(ctx context.Context, db *gorm.DB) ([]salesreportdomain.PaymentRecord, error) {
	var payments []salesreportdomain.PaymentRecord
	err := db.WithContext(ctx).Raw(
		`SELECT id, user_id, amount, currency, gateway, plan_type, status, created_at
		 FROM payments WHERE status = ?
		 ORDER BY created_at DESC`,
		salesreportdomain.PaymentStatusSuccess,
	).Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repo) ListSubscriptionStates(ctx context.Context, db *gorm.DB, ids []snowflake.ID) ([]salesreportdomain.SubscriptionState, error) {
	stmt := db.WithContext(ctx).Model(&salesreportdomain.SubscriptionState{})
	if len(ids) > 0 {
		stmt = stmt.Where("user_id IN ?", ids)
	}

	var states []salesreportdomain.SubscriptionState
	if err := stmt.Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (r *repo) ListIdentities(ctx context.Context, db *gorm.DB) ([]salesreportdomain.UserIdentity, error) {
	var identities []salesreportdomain.UserIdentity
	err := db.WithContext(ctx).Raw(
		`SELECT user_id, email FROM users`,
	).Scan(&identities).Error
	if err != nil {
		return nil, err
	}
	return identities, nil
}
