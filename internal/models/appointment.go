package models

import (
	"time"

	"gorm.io/datatypes"
)

type Appointment struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Folio string `gorm:"size:36;uniqueIndex" json:"folio"`

	SlotID uint `json:"slot_id"`
	Slot   Slot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"slot"`

	AgentID string `gorm:"size:60" json:"agent_id"`

	// Vínculos opcionales: pueden faltar en esquemas viejos, nunca bloquean
	// la creación de la cita.
	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	PropertyID *uint     `json:"property_id"`
	Property   *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"property,omitempty"`

	// Copia desnormalizada del contacto, siempre presente.
	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	OperationType string `gorm:"size:10;not null" json:"operation_type"` // rentar | comprar
	BudgetRange   string `gorm:"size:50" json:"budget_range"`

	// Documento abierto con el detalle de la operación, llave = operation_type.
	Detail datatypes.JSON `json:"detail"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
