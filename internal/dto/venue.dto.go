package dto

type FieldItemDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type VenueListDTO struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Phone   string         `json:"phone"`
	Fields  []FieldItemDTO `json:"fields"`
}

// VenueDetailDTO flattens the bookings of every field in the venue for the
// requested date into a single list.
type VenueDetailDTO struct {
	ID       uint                `json:"id"`
	Name     string              `json:"name"`
	Address  string              `json:"address"`
	Phone    string              `json:"phone"`
	Bookings []BookingSummaryDTO `json:"bookings"`
}
