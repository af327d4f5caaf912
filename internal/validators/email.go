package validators

import "strings"

// NormalizeEmail regresa el correo en la forma canónica usada como llave
// del cliente: minúsculas y sin espacios alrededor.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsEmailShapeValid(email string) bool {
	email = NormalizeEmail(email)

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".")
}
