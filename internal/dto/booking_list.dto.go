package dto

import (
	"time"

	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

type BookingListDTO struct {
	Folio         string    `json:"folio"`
	SlotID        uint      `json:"slot_id"`
	SlotTime      string    `json:"slot_time"`
	Status        string    `json:"status"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	OperationType string    `json:"operation_type"`
	PropertyTitle string    `json:"property_title,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromAppointment(ap *models.Appointment) BookingListDTO {
	d := BookingListDTO{
		Folio:         ap.Folio,
		SlotID:        ap.SlotID,
		SlotTime:      ap.Slot.StartTime,
		Status:        ap.Status,
		ClientName:    ap.ClientName,
		ClientEmail:   ap.ClientEmail,
		OperationType: ap.OperationType,
		CreatedAt:     ap.CreatedAt,
	}
	if ap.Property != nil {
		d.PropertyTitle = ap.Property.Title
	}
	return d
}
