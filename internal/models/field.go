package models

import "time"

// Field type is one of: soccer, minisoccer, futsal, basketball, volleyball.
type Field struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Type string `gorm:"size:20;not null" json:"type"`

	VenueID uint   `json:"venue_id"`
	Venue   *Venue `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"venue,omitempty"`

	Bookings []Booking `json:"bookings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
