package referral

import (
	"time"

	"referral-api/internal/common"
)

// MockRepository provides an in-memory Repository implementation for testing
type MockRepository struct {
	users     map[string]*User
	referrals []*Referral
	nextID    uint

	createUserError     error
	getUserError        error
	createReferralError error
	queryError          error
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{
		users:  make(map[string]*User),
		nextID: 1,
	}
}

func (m *MockRepository) CreateUser(user *User) error {
	if m.createUserError != nil {
		return m.createUserError
	}
	if _, exists := m.users[user.TgID]; exists {
		return ErrDuplicateUser
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.TgID] = user
	return nil
}

func (m *MockRepository) GetUserByTgID(tgID string) (*User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	if user, exists := m.users[tgID]; exists {
		return user, nil
	}
	return nil, common.NotFoundError{Resource: "User", ID: tgID}
}

func (m *MockRepository) GetUsersByTgIDs(tgIDs []string) ([]*User, error) {
	if m.queryError != nil {
		return nil, m.queryError
	}
	users := []*User{}
	for _, tgID := range tgIDs {
		if user, exists := m.users[tgID]; exists {
			users = append(users, user)
		}
	}
	return users, nil
}

func (m *MockRepository) CreateReferral(referral *Referral) error {
	if m.createReferralError != nil {
		return m.createReferralError
	}
	for _, existing := range m.referrals {
		if existing.UserTgID == referral.UserTgID && existing.FriendTgID == referral.FriendTgID {
			return ErrDuplicateReferral
		}
	}
	referral.ID = m.nextID
	m.nextID++
	if referral.Date.IsZero() {
		referral.Date = time.Now()
	}
	m.referrals = append(m.referrals, referral)
	return nil
}

func (m *MockRepository) ReferralExists(userTgID, friendTgID string) (bool, error) {
	if m.queryError != nil {
		return false, m.queryError
	}
	for _, existing := range m.referrals {
		if existing.UserTgID == userTgID && existing.FriendTgID == friendTgID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRepository) GetReferralsByUserTgID(userTgID string) ([]*Referral, error) {
	if m.queryError != nil {
		return nil, m.queryError
	}
	referrals := []*Referral{}
	for _, existing := range m.referrals {
		if existing.UserTgID == userTgID {
			referrals = append(referrals, existing)
		}
	}
	return referrals, nil
}

func (m *MockRepository) SumPointsByUserTgID(userTgID string) (int64, error) {
	if m.queryError != nil {
		return 0, m.queryError
	}
	var total int64
	for _, existing := range m.referrals {
		if existing.UserTgID == userTgID {
			total += int64(existing.Points)
		}
	}
	return total, nil
}

func (m *MockRepository) WithTransaction(fn func(Repository) error) error {
	return fn(m)
}

// Error injection helpers for testing failure paths

func (m *MockRepository) SetCreateUserError(err error)     { m.createUserError = err }
func (m *MockRepository) SetGetUserError(err error)        { m.getUserError = err }
func (m *MockRepository) SetCreateReferralError(err error) { m.createReferralError = err }
func (m *MockRepository) SetQueryError(err error)          { m.queryError = err }
