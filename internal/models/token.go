package models

import "time"

// Token types. A token is a single-use secret mailed to the user, distinct
// from the bearer credential used on requests.
const (
	TokenTypeEmail    = "email"
	TokenTypePassword = "password"
	TokenTypeOTP      = "otp"
)

// TokenTTL is the default validity window for a freshly issued token.
const TokenTTL = 5 * time.Minute

// Token is a single-use verification or password-reset secret.
type Token struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"unique;not null" json:"token"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Type      string    `gorm:"not null" json:"type"`
	Expires   time.Time `gorm:"not null" json:"expires"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the token's validity window has passed.
func (t *Token) Expired(now time.Time) bool {
	return now.After(t.Expires)
}
