package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/httperr"
)

// mapBookingError traduce la taxonomía del motor a HTTP. Validation,
// NotFound y CapacityExceeded son terminales para el cliente; cualquier
// otra cosa es un 500.
func mapBookingError(c *gin.Context, err error) {

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		httperr.WriteDetails(c, http.StatusBadRequest,
			"validation_error",
			fmt.Sprintf("Campo %s: %s.", vErr.Field, vErr.Reason),
			gin.H{"field": vErr.Field, "reason": vErr.Reason},
		)
		return
	}

	var nfErr *domain.SlotNotFoundError
	if errors.As(err, &nfErr) {
		msg := fmt.Sprintf("No hay horario a las %s el %s.", nfErr.Time, nfErr.Date)
		if len(nfErr.AvailableTimes) > 0 {
			msg += " Horarios disponibles: " + strings.Join(nfErr.AvailableTimes, ", ") + "."
		}
		httperr.WriteDetails(c, http.StatusNotFound,
			"slot_not_found",
			msg,
			gin.H{"available_times": nfErr.AvailableTimes},
		)
		return
	}

	var capErr *domain.CapacityExceededError
	if errors.As(err, &capErr) {
		httperr.WriteDetails(c, http.StatusConflict,
			"capacity_exceeded",
			"El horario ya no tiene cupo.",
			gin.H{"capacity": capErr.Capacity, "bookedCount": capErr.BookedCount},
		)
		return
	}

	if httperr.IsBusiness(err, "booking_not_found") {
		httperr.NotFound(c, "booking_not_found", "Cita no encontrada.")
		return
	}

	if httperr.IsBusiness(err, "invalid_state") {
		httperr.Conflict(c, "invalid_state", "La cita no admite esa transición.")
		return
	}

	var pErr *domain.PersistenceError
	if errors.As(err, &pErr) {
		httperr.Internal(c, "persistence_error", "No se pudo guardar la cita.")
		return
	}

	httperr.Internal(c, "internal_error", "Error inesperado.")
}
