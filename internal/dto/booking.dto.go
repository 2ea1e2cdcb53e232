package dto

import "time"

type BookingSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	UserID        uint      `json:"user_id"`
	PlayDateStart time.Time `json:"play_date_start"`
	PlayDateEnd   time.Time `json:"play_date_end"`
}

type BookingDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	UserID        uint      `json:"user_id"`
	PlayDateStart time.Time `json:"play_date_start"`
	PlayDateEnd   time.Time `json:"play_date_end"`
	FieldID       uint      `json:"field_id"`
}

type VenueSummaryDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type BookingListDTO struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	UserID        uint            `json:"user_id"`
	PlayDateStart time.Time       `json:"play_date_start"`
	PlayDateEnd   time.Time       `json:"play_date_end"`
	FieldID       uint            `json:"field_id"`
	Type          string          `json:"type"`
	PlayersCount  int64           `json:"players_count"`
	Venue         VenueSummaryDTO `json:"venue"`
}

type PlayerDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type BookingDetailDTO struct {
	ID            uint        `json:"id"`
	Title         string      `json:"title"`
	UserID        uint        `json:"user_id"`
	PlayDateStart time.Time   `json:"play_date_start"`
	PlayDateEnd   time.Time   `json:"play_date_end"`
	FieldID       uint        `json:"field_id"`
	Field         FieldDTO    `json:"field"`
	Players       []PlayerDTO `json:"players"`
	PlayersCount  int64       `json:"players_count"`
}

type ScheduleItemDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	PlayDateStart time.Time `json:"play_date_start"`
	PlayDateEnd   time.Time `json:"play_date_end"`
	FieldID       uint      `json:"field_id"`
	Field         FieldDTO  `json:"field"`
}

type UserSchedulesDTO struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	Schedules []ScheduleItemDTO `json:"schedules"`
}
