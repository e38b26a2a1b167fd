package referral

import (
	"errors"
	"fmt"
	"time"

	"referral-api/internal/common"
	"referral-api/internal/config"

	"go.uber.org/zap"
)

// Service defines the interface for referral program operations
type Service interface {
	CreateOrGetUser(tgID, username string) (*User, error)
	GetUser(tgID string) (*User, error)
	GetReferralLink(tgID string) (string, error)
	GetFriends(tgID string) ([]*User, error)
	GetTotalPoints(tgID string) (int64, error)
	CreateReferral(userTgID, friendTgID string) (*Referral, error)
}

// service implements the Service interface
type service struct {
	logger     *zap.Logger
	repository Repository
	linkBase   string
	points     int
}

// NewService creates a new instance of Service
func NewService(logger *zap.Logger, repository Repository, cfg config.ReferralConfig) Service {
	return &service{
		logger:     logger,
		repository: repository,
		linkBase:   cfg.LinkBase,
		points:     cfg.Points,
	}
}

// CreateOrGetUser returns the user for tgID, creating it on first call.
// The operation is idempotent: repeat calls return the existing row and
// its original referral link. A concurrent create that loses the race on
// the tg_id unique index is resolved by re-fetching.
func (s *service) CreateOrGetUser(tgID, username string) (*User, error) {
	if tgID == "" {
		return nil, common.ValidationError{Field: "tg_id", Message: "must not be empty"}
	}

	s.logger.Info("Creating or getting user", zap.String("tgID", tgID))

	user, err := s.repository.GetUserByTgID(tgID)
	if err == nil {
		return user, nil
	}
	if !common.IsNotFound(err) {
		return nil, err
	}

	user = &User{
		TgID:     tgID,
		Username: username,
		RefLink:  BuildRefLink(s.linkBase, tgID),
	}

	err = s.repository.CreateUser(user)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, ErrDuplicateUser) {
		// Lost a get-or-create race; the row exists now.
		s.logger.Debug("User insert hit unique index, re-fetching", zap.String("tgID", tgID))
		return s.repository.GetUserByTgID(tgID)
	}

	return nil, err
}

// GetUser retrieves a user by Telegram ID
func (s *service) GetUser(tgID string) (*User, error) {
	if tgID == "" {
		return nil, common.ValidationError{Field: "tg_id", Message: "must not be empty"}
	}

	return s.repository.GetUserByTgID(tgID)
}

// GetReferralLink returns the stored referral link for a user
func (s *service) GetReferralLink(tgID string) (string, error) {
	user, err := s.GetUser(tgID)
	if err != nil {
		return "", err
	}

	return user.RefLink, nil
}

// GetFriends returns the users referred by tgID. The result is empty, not
// an error, when the user has no referrals; order is unspecified.
func (s *service) GetFriends(tgID string) ([]*User, error) {
	if tgID == "" {
		return nil, common.ValidationError{Field: "tg_id", Message: "must not be empty"}
	}

	referrals, err := s.repository.GetReferralsByUserTgID(tgID)
	if err != nil {
		return nil, err
	}

	friendTgIDs := make([]string, 0, len(referrals))
	for _, ref := range referrals {
		friendTgIDs = append(friendTgIDs, ref.FriendTgID)
	}

	return s.repository.GetUsersByTgIDs(friendTgIDs)
}

// GetTotalPoints sums the points earned by a user across all referrals
func (s *service) GetTotalPoints(tgID string) (int64, error) {
	if tgID == "" {
		return 0, common.ValidationError{Field: "tg_id", Message: "must not be empty"}
	}

	return s.repository.SumPointsByUserTgID(tgID)
}

// CreateReferral records that userTgID referred friendTgID, awarding the
// configured points. The pair is directed: (A,B) and (B,A) are distinct.
// A duplicate pair yields a ConflictError, whether caught by the pre-check
// or by the composite unique index.
func (s *service) CreateReferral(userTgID, friendTgID string) (*Referral, error) {
	if userTgID == "" {
		return nil, common.ValidationError{Field: "user_tg_id", Message: "must not be empty"}
	}
	if friendTgID == "" {
		return nil, common.ValidationError{Field: "friend_tg_id", Message: "must not be empty"}
	}

	s.logger.Info("Creating referral",
		zap.String("userTgID", userTgID),
		zap.String("friendTgID", friendTgID))

	conflict := common.ConflictError{
		Resource: "Referral",
		Detail:   fmt.Sprintf("referral from '%s' to '%s' already exists", userTgID, friendTgID),
	}

	var created *Referral
	err := s.repository.WithTransaction(func(repo Repository) error {
		exists, err := repo.ReferralExists(userTgID, friendTgID)
		if err != nil {
			return err
		}
		if exists {
			return conflict
		}

		referral := &Referral{
			Date:       time.Now().UTC(),
			UserTgID:   userTgID,
			FriendTgID: friendTgID,
			Points:     s.points,
		}
		if err := repo.CreateReferral(referral); err != nil {
			if errors.Is(err, ErrDuplicateReferral) {
				return conflict
			}
			return err
		}

		created = referral
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
