package models

import "time"

// Horario de visita con cupo fijo por agente.
//
// Booked es un contador de cortesía para el calendario: la ocupación real
// siempre se recuenta sobre las citas activas (ver usecase/booking).
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date      string `gorm:"size:10;index:idx_slot_day" json:"date"`       // YYYY-MM-DD
	StartTime string `gorm:"size:20" json:"start_time"`                    // HH:MM:SS, puede traer offset heredado
	AgentID   string `gorm:"size:60;index:idx_slot_day" json:"agent_id"`

	Capacity int  `gorm:"not null" json:"capacity"`
	Booked   int  `gorm:"default:0" json:"booked"`
	Enabled  bool `gorm:"default:true" json:"enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
