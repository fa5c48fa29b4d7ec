package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Repository loads the raw collections the report is folded from. All
// methods are read-only.
type Repository interface {
	// ListSuccessfulPayments returns settled payments only. The fold still
	// skips any non-success row defensively.
	ListSuccessfulPayments(ctx context.Context, db *gorm.DB) ([]PaymentRecord, error)

	// ListSubscriptionStates returns every user's subscription row when ids
	// is empty, or the given users only.
	ListSubscriptionStates(ctx context.Context, db *gorm.DB, ids []snowflake.ID) ([]SubscriptionState, error)

	ListIdentities(ctx context.Context, db *gorm.DB) ([]UserIdentity, error)
}
