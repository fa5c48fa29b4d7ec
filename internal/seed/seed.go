package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
	"gorm.io/gorm"
)

const (
	demoUserCount = 4
)

// EnsureDemoData seeds a small set of users, subscription rows, and
// payments so the dashboard has something to show in local development.
// Safe to run repeatedly.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&salesreportdomain.UserIdentity{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return insertDemoData(ctx, tx, node)
	})
}

func insertDemoData(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	names := []string{"Asha Trader", "Ben Ochoa", "Chandra Rao", "Dana Fox"}
	gateways := []string{"Razorpay", "PayPal", "Razorpay", "BankWire"}
	amounts := []float64{999, 499, 1999, 250}
	createdAt := []time.Time{
		day.Add(9 * time.Hour),
		day.AddDate(0, 0, -2),
		day.AddDate(0, 0, -10),
		day.AddDate(0, -2, 0),
	}
	endDates := []*time.Time{
		ptrTime(day),
		ptrTime(day.AddDate(0, 0, 3)),
		ptrTime(day.AddDate(0, 0, -4)),
		nil,
	}

	for i := 0; i < demoUserCount; i++ {
		userID := node.Generate()

		user := salesreportdomain.UserIdentity{
			UserID: userID,
			Email:  "demo" + userID.String() + "@tradelog.dev",
		}
		if err := tx.WithContext(ctx).Create(&user).Error; err != nil {
			return err
		}

		sub := salesreportdomain.SubscriptionState{
			UserID:      userID,
			DisplayName: names[i],
			EndDate:     endDates[i],
			Status:      "active",
		}
		if err := tx.WithContext(ctx).Create(&sub).Error; err != nil {
			return err
		}

		payment := salesreportdomain.PaymentRecord{
			ID:        node.Generate(),
			UserID:    userID,
			Amount:    ptrFloat(amounts[i]),
			Currency:  "INR",
			Gateway:   gateways[i],
			PlanType:  "annual",
			Status:    salesreportdomain.PaymentStatusSuccess,
			CreatedAt: ptrTime(createdAt[i]),
		}
		if err := tx.WithContext(ctx).Create(&payment).Error; err != nil {
			return err
		}
	}

	return nil
}

func ptrTime(t time.Time) *time.Time { return &t }
func ptrFloat(f float64) *float64    { return &f }
