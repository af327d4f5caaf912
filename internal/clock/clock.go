package clock

import "strings"

// Normalización de horas en texto. Los horarios llegan en varias formas
// ("10:00", "10:00:00", "2024-01-01T10:00:00+00:00") según la fuente que
// alimentó la agenda; todas se comparan en la forma canónica HH:MM.
//
// Las funciones son totales: una entrada irreconocible se trunca lo mejor
// posible en vez de fallar, y es la resolución de horario la que reporta
// "hora no encontrada" aguas abajo.

// Normalize regresa la forma canónica HH:MM usada para comparar.
func Normalize(raw string) string {
	s := timePart(raw)
	if len(s) > 5 {
		s = s[:5]
	}
	return s
}

// NormalizeForStorage regresa la forma canónica HH:MM:SS usada al guardar,
// con segundos rellenados a dos dígitos.
func NormalizeForStorage(raw string) string {
	s := timePart(raw)

	sec := "00"
	if parts := strings.Split(s, ":"); len(parts) >= 3 {
		sec = parts[2]
		if len(sec) == 1 {
			sec = "0" + sec
		}
		if len(sec) > 2 {
			sec = sec[:2]
		}
	}

	return Normalize(raw) + ":" + sec
}

// NormalizeDate regresa solo la fecha calendario: si la cadena trae un
// separador fecha/hora se corta ahí, si no se regresa tal cual.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		return s[:i]
	}
	return s
}

// timePart aísla la porción de hora: descarta la fecha si existe separador
// y recorta cualquier offset de zona al final.
func timePart(raw string) string {
	s := strings.TrimSpace(raw)

	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[i+1:]
	}

	s = strings.TrimSuffix(s, "Z")

	// Ya sin fecha, un '+' o '-' solo puede ser offset.
	if i := strings.IndexAny(s, "+-"); i >= 0 {
		s = s[:i]
	}

	return s
}
