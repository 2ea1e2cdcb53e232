package models

import "time"

type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	PlayDateStart time.Time `gorm:"not null" json:"play_date_start"`
	PlayDateEnd   time.Time `gorm:"not null" json:"play_date_end"`

	UserID uint  `json:"user_id"`
	Booker *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"booker,omitempty"`

	FieldID uint   `json:"field_id"`
	Field   *Field `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"field,omitempty"`

	Players []User `gorm:"many2many:schedules" json:"players,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
