package domain

import (
	"context"
	"errors"
)

// Service builds the consolidated sales and renewal snapshot for the admin
// dashboard and the report export.
type Service interface {
	BuildSnapshot(ctx context.Context) (*SalesSnapshot, error)
}

var (
	ErrLoadPayments      = errors.New("load_payments_failed")
	ErrLoadSubscriptions = errors.New("load_subscriptions_failed")
	ErrLoadIdentities    = errors.New("load_identities_failed")
)
