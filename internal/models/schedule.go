package models

// Schedule is the pivot row linking a player to a booking. The composite
// primary key makes concurrent joins of the same pair collide instead of
// inserting duplicates.
type Schedule struct {
	UserID    uint `gorm:"primaryKey" json:"user_id"`
	BookingID uint `gorm:"primaryKey" json:"booking_id"`
}
