package referral

import (
	"errors"

	"referral-api/internal/common"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// gormRepository implements the Repository interface using GORM
type gormRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormRepository creates a new GORM-based referral repository
func NewGormRepository(db *gorm.DB, logger *zap.Logger) Repository {
	return &gormRepository{
		db:     db,
		logger: logger,
	}
}

// User operations

// CreateUser inserts a new user row. The unique index on tg_id is the guard
// against concurrent get-or-create races; a duplicate insert surfaces as
// ErrDuplicateUser so callers can re-fetch instead of failing.
func (r *gormRepository) CreateUser(user *User) error {
	r.logger.Debug("Creating user", zap.String("tgID", user.TgID))

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return WrapRepositoryError(err, "create user")
	}

	r.logger.Info("User created", zap.String("tgID", user.TgID))
	return nil
}

// GetUserByTgID retrieves a user by Telegram ID
func (r *gormRepository) GetUserByTgID(tgID string) (*User, error) {
	r.logger.Debug("Getting user by tg ID", zap.String("tgID", tgID))

	var user User
	err := r.db.Where("tg_id = ?", tgID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundError{Resource: "User", ID: tgID}
		}
		return nil, WrapRepositoryError(err, "get user by tg ID")
	}

	return &user, nil
}

// GetUsersByTgIDs retrieves all users whose tg_id is in the given set.
// IDs without a matching row are silently absent from the result.
func (r *gormRepository) GetUsersByTgIDs(tgIDs []string) ([]*User, error) {
	if len(tgIDs) == 0 {
		return []*User{}, nil
	}

	users := []*User{}
	err := r.db.Where("tg_id IN ?", tgIDs).Find(&users).Error
	if err != nil {
		return nil, WrapRepositoryError(err, "get users by tg IDs")
	}

	return users, nil
}

// Referral operations

// CreateReferral inserts a new referral row. The composite unique index on
// (user_tg_id, friend_tg_id) backs up the caller's duplicate pre-check.
func (r *gormRepository) CreateReferral(referral *Referral) error {
	r.logger.Debug("Creating referral",
		zap.String("userTgID", referral.UserTgID),
		zap.String("friendTgID", referral.FriendTgID))

	if err := r.db.Create(referral).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateReferral
		}
		return WrapRepositoryError(err, "create referral")
	}

	r.logger.Info("Referral created",
		zap.String("userTgID", referral.UserTgID),
		zap.String("friendTgID", referral.FriendTgID),
		zap.Int("points", referral.Points))
	return nil
}

// ReferralExists reports whether the ordered (user, friend) pair already has a row
func (r *gormRepository) ReferralExists(userTgID, friendTgID string) (bool, error) {
	var count int64
	err := r.db.Model(&Referral{}).
		Where("user_tg_id = ? AND friend_tg_id = ?", userTgID, friendTgID).
		Count(&count).Error
	if err != nil {
		return false, WrapRepositoryError(err, "referral exists check")
	}

	return count > 0, nil
}

// GetReferralsByUserTgID retrieves all referrals made by the given user
func (r *gormRepository) GetReferralsByUserTgID(userTgID string) ([]*Referral, error) {
	r.logger.Debug("Getting referrals by user tg ID", zap.String("userTgID", userTgID))

	referrals := []*Referral{}
	err := r.db.Where("user_tg_id = ?", userTgID).Find(&referrals).Error
	if err != nil {
		return nil, WrapRepositoryError(err, "get referrals by user tg ID")
	}

	return referrals, nil
}

// SumPointsByUserTgID sums the points of all referrals made by the given
// user, returning 0 when there are none.
func (r *gormRepository) SumPointsByUserTgID(userTgID string) (int64, error) {
	var total int64
	err := r.db.Model(&Referral{}).
		Where("user_tg_id = ?", userTgID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, WrapRepositoryError(err, "sum points by user tg ID")
	}

	return total, nil
}

// Transaction support

// WithTransaction executes a function within a database transaction
func (r *gormRepository) WithTransaction(fn func(Repository) error) error {
	r.logger.Debug("Starting transaction")

	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &gormRepository{
			db:     tx,
			logger: r.logger,
		}

		err := fn(txRepo)
		if err != nil {
			r.logger.Debug("Transaction failed, rolling back", zap.Error(err))
			return err
		}

		r.logger.Debug("Transaction completed successfully")
		return nil
	})
}
