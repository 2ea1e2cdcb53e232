package models

import "time"

type Venue struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255;not null" json:"address"`
	Phone   string `gorm:"size:20;not null" json:"phone"`

	Fields []Field `json:"fields,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
