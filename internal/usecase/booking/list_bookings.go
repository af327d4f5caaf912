package booking

import (
	"context"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/dto"
	"github.com/VivientaServicios01/visitas-scheduler/internal/httperr"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

type ListBookingsByDate struct {
	appointments domain.AppointmentStore
}

func NewListBookingsByDate(appointments domain.AppointmentStore) *ListBookingsByDate {
	return &ListBookingsByDate{appointments: appointments}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.BookingListDTO, error) {

	aps, err := uc.appointments.ListByDate(ctx, date)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list_appointments", Err: err}
	}

	out := make([]dto.BookingListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.FromAppointment(&ap))
	}
	return out, nil
}

type GetBooking struct {
	appointments domain.AppointmentStore
}

func NewGetBooking(appointments domain.AppointmentStore) *GetBooking {
	return &GetBooking{appointments: appointments}
}

func (uc *GetBooking) Execute(ctx context.Context, folio string) (*models.Appointment, error) {
	ap, err := uc.appointments.GetByFolio(ctx, folio)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	return ap, nil
}
