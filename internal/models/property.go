package models

import "time"

// Propiedad publicada. El catálogo completo vive en otro servicio; aquí solo
// se resuelve la referencia externa hacia un id interno.
type Property struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ExternalRef string `gorm:"size:100;uniqueIndex;not null" json:"external_ref"`
	Title       string `gorm:"size:150" json:"title"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
