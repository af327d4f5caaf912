package booking

// Columnas opcionales de la tabla de citas. Instalaciones viejas del CRM
// corren sin los vínculos a cliente o propiedad; el escritor las omite
// según el descriptor en vez de adivinar parseando mensajes de error.

type OptionalField string

const (
	FieldPropertyID OptionalField = "property_id"
	FieldClientID   OptionalField = "client_id"
)

// Orden de degradación: primero se suelta el vínculo a propiedad, después
// el vínculo a cliente.
var DegradationOrder = []OptionalField{FieldPropertyID, FieldClientID}

// Capabilities describe qué columnas opcionales soporta el esquema actual.
// Se consulta una sola vez por proceso.
type Capabilities struct {
	PropertyLink bool
	ClientLink   bool
}

func (c Capabilities) Supports(f OptionalField) bool {
	switch f {
	case FieldPropertyID:
		return c.PropertyLink
	case FieldClientID:
		return c.ClientLink
	}
	return false
}

// FieldSet acumula las columnas que el escritor decidió omitir.
type FieldSet map[OptionalField]bool

func (s FieldSet) Omit(f OptionalField) { s[f] = true }

func (s FieldSet) Omitted(f OptionalField) bool { return s[f] }

func (s FieldSet) Columns() []string {
	cols := make([]string, 0, len(s))
	for f := range s {
		cols = append(cols, string(f))
	}
	return cols
}
