package migration

import (
	"fmt"

	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run migrates the tables the report engine reads. The engine itself never
// writes them; the write paths live in the journal CRUD services.
func Run(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(
		&salesreportdomain.PaymentRecord{},
		&salesreportdomain.SubscriptionState{},
		&salesreportdomain.UserIdentity{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("migrations applied")
	return nil
}
