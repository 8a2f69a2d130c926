// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultPicture is the placeholder profile picture assigned at signup.
const DefaultPicture = "imgurl"

// User represents a registered account in the Stackwiser application.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	FirstName   string         `gorm:"not null" json:"firstName"`
	LastName    string         `gorm:"not null" json:"lastName"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	PhoneNumber string         `gorm:"unique;not null" json:"phoneNumber"`
	Picture     string         `gorm:"default:imgurl" json:"picture"`
	IsActive    bool           `gorm:"default:false" json:"isActive"`
	IsBlocked   bool           `gorm:"default:false" json:"isBlocked"`
	Role        string         `gorm:"default:user" json:"role"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Posts       []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// PublicProfile is the subset of a user's fields safe to return to clients.
type PublicProfile struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Picture     string `json:"picture"`
}

// Public returns the client-safe view of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Picture:     u.Picture,
	}
}
