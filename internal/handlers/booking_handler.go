package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/httperr"
	"github.com/VivientaServicios01/visitas-scheduler/internal/httpresp"
	ucBooking "github.com/VivientaServicios01/visitas-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	create     *ucBooking.CreateBooking
	update     *ucBooking.UpdateBooking
	transition *ucBooking.ChangeBookingStatus
	get        *ucBooking.GetBooking
	listByDate *ucBooking.ListBookingsByDate
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	transition *ucBooking.ChangeBookingStatus,
	get *ucBooking.GetBooking,
	listByDate *ucBooking.ListBookingsByDate,
) *BookingHandler {
	return &BookingHandler{
		create:     create,
		update:     update,
		transition: transition,
		get:        get,
		listByDate: listByDate,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

// Forma plana del formulario público; se convierte a la unión tipada
// antes de tocar el motor.
type BookingRequestDTO struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	OperationType string `json:"operationType"` // rentar | comprar
	BudgetRentar  string `json:"budgetRentar"`
	BudgetComprar string `json:"budgetComprar"`

	// renta
	Company string `json:"company"`

	// compra, anidado por fuente de financiamiento
	ResourceType              string `json:"resourceType"` // banco | infonavit | fovissste | contado
	Banco                     string `json:"banco"`
	CreditoPreaprobado        bool   `json:"creditoPreaprobado"`
	ModalidadInfonavit        string `json:"modalidadInfonavit"`
	NumeroTrabajadorInfonavit string `json:"numeroTrabajadorInfonavit"`
	ModalidadFovissste        string `json:"modalidadFovissste"`
	NumeroTrabajadorFovissste string `json:"numeroTrabajadorFovissste"`

	PropertyID string `json:"propertyId"`
	Notes      string `json:"notes"`
	AgentID    string `json:"agentId"`
}

func (d *BookingRequestDTO) toDomain() *domain.Request {
	req := &domain.Request{
		Date:        d.Date,
		Time:        d.Time,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		AgentID:     d.AgentID,
		PropertyRef: d.PropertyID,
		Notes:       d.Notes,
	}

	switch domain.OperationType(d.OperationType) {
	case domain.OperationRentar:
		req.Operation = domain.Operation{
			Type:   domain.OperationRentar,
			Budget: d.BudgetRentar,
			Rental: &domain.RentalDetail{Company: d.Company},
		}

	case domain.OperationComprar:
		purchase := &domain.PurchaseDetail{
			Source:      domain.FinancingSource(d.ResourceType),
			Bank:        d.Banco,
			PreApproved: d.CreditoPreaprobado,
		}
		switch purchase.Source {
		case domain.FinancingInfonavit:
			purchase.Modality = d.ModalidadInfonavit
			purchase.WorkerNumber = d.NumeroTrabajadorInfonavit
		case domain.FinancingFovissste:
			purchase.Modality = d.ModalidadFovissste
			purchase.WorkerNumber = d.NumeroTrabajadorFovissste
		}
		req.Operation = domain.Operation{
			Type:     domain.OperationComprar,
			Budget:   d.BudgetComprar,
			Purchase: purchase,
		}

	default:
		// Tipo desconocido: lo rechaza Validate con la taxonomía del motor.
		req.Operation = domain.Operation{Type: domain.OperationType(d.OperationType)}
	}

	return req
}

////////////////////////////////////////////////////////
// CREATE / UPDATE
////////////////////////////////////////////////////////

func (h *BookingHandler) Create(c *gin.Context) {
	var dto BookingRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cuerpo de la petición inválido.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), dto.toDomain())
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *BookingHandler) Update(c *gin.Context) {
	folio := c.Param("folio")

	var dto BookingRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cuerpo de la petición inválido.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		Folio:   folio,
		Request: dto.toDomain(),
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

////////////////////////////////////////////////////////
// TRANSICIONES DE STAFF
////////////////////////////////////////////////////////

func (h *BookingHandler) Confirm(c *gin.Context)  { h.applyTransition(c, domain.StatusConfirmed) }
func (h *BookingHandler) Cancel(c *gin.Context)   { h.applyTransition(c, domain.StatusCancelled) }
func (h *BookingHandler) Complete(c *gin.Context) { h.applyTransition(c, domain.StatusCompleted) }
func (h *BookingHandler) NoShow(c *gin.Context)   { h.applyTransition(c, domain.StatusNoShow) }

func (h *BookingHandler) applyTransition(c *gin.Context, next domain.Status) {
	ap, err := h.transition.Execute(c.Request.Context(), c.Param("folio"), next)
	if err != nil {
		mapBookingError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

////////////////////////////////////////////////////////
// LECTURAS
////////////////////////////////////////////////////////

func (h *BookingHandler) Get(c *gin.Context) {
	ap, err := h.get.Execute(c.Request.Context(), c.Param("folio"))
	if err != nil {
		mapBookingError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *BookingHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_params", "Fecha obligatoria.")
		return
	}

	list, err := h.listByDate.Execute(c.Request.Context(), date)
	if err != nil {
		mapBookingError(c, err)
		return
	}
	httpresp.List(c, list)
}
