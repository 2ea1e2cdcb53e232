package models

import "time"

type OtpCode struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OtpCode int  `gorm:"not null" json:"otp_code"`
	UserID  uint `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
