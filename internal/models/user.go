package models

import "time"

// UserModel is the admin account. The system expects exactly one; until it is
// created, login falls back to the environment bootstrap credentials.
type UserModel struct {
	Base
	Username   string     `json:"username" gorm:"uniqueIndex;not null"`
	Email      string     `json:"email"    gorm:"index"`
	Password   string     `json:"-"        gorm:"not null"`
	OTP        string     `json:"-"`
	OTPExpires *time.Time `json:"-"`
}

func (UserModel) TableName() string { return "users" }
