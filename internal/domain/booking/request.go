package booking

import (
	"github.com/VivientaServicios01/visitas-scheduler/internal/validators"
)

// Agente al que caen las reservas cuando la petición no trae agentId.
const DefaultAgentID = "default"

type OperationType string

const (
	OperationRentar  OperationType = "rentar"
	OperationComprar OperationType = "comprar"
)

type FinancingSource string

const (
	FinancingBanco     FinancingSource = "banco"
	FinancingInfonavit FinancingSource = "infonavit"
	FinancingFovissste FinancingSource = "fovissste"
	FinancingContado   FinancingSource = "contado"
)

// ======================================================
// Petición de reserva
// ======================================================

// Request es la petición ya tipada: la operación es una unión etiquetada
// por Type, no un mapa de campos sueltos.
type Request struct {
	Date  string
	Time  string
	Name  string
	Email string
	Phone string

	AgentID     string
	PropertyRef string
	Notes       string

	Operation Operation
}

type Operation struct {
	Type   OperationType
	Budget string

	// Exactamente una rama poblada, según Type.
	Rental   *RentalDetail
	Purchase *PurchaseDetail
}

type RentalDetail struct {
	Company string
}

// PurchaseDetail anida por fuente de financiamiento.
type PurchaseDetail struct {
	Source       FinancingSource
	Bank         string
	PreApproved  bool
	Modality     string
	WorkerNumber string
}

// ======================================================
// Validación
// ======================================================

func (r *Request) Validate() error {
	if r.Date == "" {
		return &ValidationError{Field: "date", Reason: "requerida"}
	}
	if r.Time == "" {
		return &ValidationError{Field: "time", Reason: "requerida"}
	}
	if r.Name == "" {
		return &ValidationError{Field: "name", Reason: "requerido"}
	}
	if !validators.IsEmailShapeValid(r.Email) {
		return &ValidationError{Field: "email", Reason: "inválido"}
	}

	switch r.Operation.Type {
	case OperationRentar:
		if r.Operation.Rental == nil {
			return &ValidationError{Field: "operationType", Reason: "detalle de renta faltante"}
		}
	case OperationComprar:
		p := r.Operation.Purchase
		if p == nil {
			return &ValidationError{Field: "operationType", Reason: "detalle de compra faltante"}
		}
		switch p.Source {
		case FinancingBanco, FinancingInfonavit, FinancingFovissste, FinancingContado:
		default:
			return &ValidationError{Field: "resourceType", Reason: "fuente de financiamiento desconocida"}
		}
	default:
		return &ValidationError{Field: "operationType", Reason: "debe ser rentar o comprar"}
	}

	return nil
}

// NormalizedEmail regresa la llave de cliente derivada del correo.
func (r *Request) NormalizedEmail() string {
	return validators.NormalizeEmail(r.Email)
}

// Agent regresa el agente efectivo de la petición.
func (r *Request) Agent() string {
	if r.AgentID == "" {
		return DefaultAgentID
	}
	return r.AgentID
}

// ======================================================
// Documento de detalle
// ======================================================

// DetailDocument arma el documento abierto que se guarda en la cita,
// con el tipo de operación como única llave de primer nivel.
func (r *Request) DetailDocument() map[string]any {
	switch r.Operation.Type {
	case OperationRentar:
		return map[string]any{
			string(OperationRentar): map[string]any{
				"empresa": r.Operation.Rental.Company,
			},
		}
	case OperationComprar:
		p := r.Operation.Purchase
		inner := map[string]any{"fuente": string(p.Source)}
		switch p.Source {
		case FinancingBanco:
			inner["banco"] = p.Bank
			inner["credito_preaprobado"] = p.PreApproved
		case FinancingInfonavit, FinancingFovissste:
			inner["modalidad"] = p.Modality
			inner["numero_trabajador"] = p.WorkerNumber
		case FinancingContado:
			// sin subcampos
		}
		return map[string]any{string(OperationComprar): inner}
	}
	return map[string]any{}
}
