package models

import "time"

type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Email      string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password   string `gorm:"size:180;not null" json:"-"`
	IsVerified bool   `gorm:"default:false" json:"is_verified"`
	Role       string `gorm:"size:20;default:'user'" json:"role"`

	OtpCode *OtpCode `json:"otp_code,omitempty"`

	// Bookings the user created; Schedules are bookings joined as a player.
	Bookings  []Booking `json:"bookings,omitempty"`
	Schedules []Booking `gorm:"many2many:schedules" json:"schedules,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
