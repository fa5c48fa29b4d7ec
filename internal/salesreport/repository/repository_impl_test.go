package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&salesreportdomain.PaymentRecord{},
		&salesreportdomain.SubscriptionState{},
		&salesreportdomain.UserIdentity{},
	))
	return db
}

func TestListSuccessfulPaymentsFiltersStatus(t *testing.T) {
	db := openTestDB(t)
	node, _ := snowflake.NewNode(1)
	now := time.Now().UTC()
	amt := 100.0

	for _, status := range []string{"success", "failed", "pending", "success"} {
		require.NoError(t, db.Create(&salesreportdomain.PaymentRecord{
			ID: node.Generate(), UserID: node.Generate(), Amount: &amt,
			Gateway: "paypal", Status: status, CreatedAt: &now,
		}).Error)
	}

	repo := NewRepository()
	payments, err := repo.ListSuccessfulPayments(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	for _, p := range payments {
		require.Equal(t, salesreportdomain.PaymentStatusSuccess, p.Status)
	}
}

func TestListSubscriptionStatesByIDs(t *testing.T) {
	db := openTestDB(t)
	node, _ := snowflake.NewNode(1)

	a, b := node.Generate(), node.Generate()
	for _, id := range []snowflake.ID{a, b} {
		require.NoError(t, db.Create(&salesreportdomain.SubscriptionState{
			UserID: id, DisplayName: "user " + id.String(), Status: "active",
		}).Error)
	}

	repo := NewRepository()

	all, err := repo.ListSubscriptionStates(context.Background(), db, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	only, err := repo.ListSubscriptionStates(context.Background(), db, []snowflake.ID{a})
	require.NoError(t, err)
	require.Len(t, only, 1)
	require.Equal(t, a, only[0].UserID)
}

func TestListIdentities(t *testing.T) {
	db := openTestDB(t)
	node, _ := snowflake.NewNode(1)

	id := node.Generate()
	require.NoError(t, db.Create(&salesreportdomain.UserIdentity{UserID: id, Email: "a@b.c"}).Error)

	repo := NewRepository()
	identities, err := repo.ListIdentities(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, identities, 1)
	require.Equal(t, "a@b.c", identities[0].Email)
}
