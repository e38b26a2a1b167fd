package referral

import "errors"

// Repository errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUser     = errors.New("user already exists")
	ErrDuplicateReferral = errors.New("referral already exists")
)

// Repository defines the data access interface for users and referrals.
type Repository interface {
	// User operations
	CreateUser(user *User) error
	GetUserByTgID(tgID string) (*User, error)
	GetUsersByTgIDs(tgIDs []string) ([]*User, error)

	// Referral operations
	CreateReferral(referral *Referral) error
	ReferralExists(userTgID, friendTgID string) (bool, error)
	GetReferralsByUserTgID(userTgID string) ([]*Referral, error)
	SumPointsByUserTgID(userTgID string) (int64, error)

	// Transaction support
	WithTransaction(fn func(Repository) error) error
}
