package models

import "time"

// Cliente sin login, identificado por correo normalizado.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
