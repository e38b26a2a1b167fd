package referral

import (
	"fmt"

	"gorm.io/gorm"
)

// RunMigrations auto-creates the users and referrals tables and their
// indexes. Safe to run on every process start.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&User{},
		&Referral{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate referral tables: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createIndexes creates lookup indexes not covered by the model tags
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_referrals_date ON referrals(date)",
		"CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
