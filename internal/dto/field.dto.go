package dto

type FieldDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	VenueID uint   `json:"venue_id"`
}

type FieldDetailDTO struct {
	ID       uint                `json:"id"`
	Name     string              `json:"name"`
	Type     string              `json:"type"`
	VenueID  uint                `json:"venue_id"`
	Bookings []BookingSummaryDTO `json:"bookings"`
}
