package referral

import (
	"fmt"
	"time"
)

// User represents a participant in the referral program. Rows are created
// lazily on the first create-user call for a given Telegram ID and are
// never updated or deleted afterwards.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	TgID     string `gorm:"column:tg_id;uniqueIndex;not null" json:"tg_id"`
	Username string `gorm:"type:varchar(255)" json:"username"`
	RefLink  string `gorm:"column:ref_link;uniqueIndex" json:"ref_link"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// Referral records that one user referred another. The (user, friend) pair
// is directed and unique; rows are write-once.
type Referral struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Date       time.Time `gorm:"autoCreateTime" json:"date"`
	UserTgID   string    `gorm:"column:user_tg_id;index;uniqueIndex:idx_referrals_user_friend;not null" json:"user_tg_id"`
	FriendTgID string    `gorm:"column:friend_tg_id;index;uniqueIndex:idx_referrals_user_friend;not null" json:"friend_tg_id"`
	Points     int       `json:"points"`
}

// TableName returns the table name for the Referral model
func (Referral) TableName() string {
	return "referrals"
}

// BuildRefLink builds the shareable referral URL for a Telegram ID. The
// link is a deterministic function of the ID so repeated create-user calls
// always produce the same value.
func BuildRefLink(base, tgID string) string {
	return fmt.Sprintf("%s?startapp=%s", base, tgID)
}
