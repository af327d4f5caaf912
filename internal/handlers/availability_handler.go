package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VivientaServicios01/visitas-scheduler/internal/httperr"
	"github.com/VivientaServicios01/visitas-scheduler/internal/httpresp"
	ucBooking "github.com/VivientaServicios01/visitas-scheduler/internal/usecase/booking"
)

type AvailabilityHandler struct {
	availability *ucBooking.ListAvailability
}

func NewAvailabilityHandler(availability *ucBooking.ListAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// List regresa los horarios del día con su cupo restante según el
// contador de cortesía.
func (h *AvailabilityHandler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_params", "Fecha obligatoria.")
		return
	}

	entries, err := h.availability.Execute(
		c.Request.Context(),
		date,
		c.Query("agent_id"),
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.List(c, entries)
}
