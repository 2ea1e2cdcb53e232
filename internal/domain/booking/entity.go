package booking

import "time"

type CreateInput struct {
	UserID        uint
	Title         string
	FieldID       uint
	PlayDateStart time.Time
	PlayDateEnd   time.Time
}
