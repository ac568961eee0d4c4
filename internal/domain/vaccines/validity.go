package vaccines

import (
	"math"
	"time"
)

// ValidityDays calcula la ventana de validez en días entre aplicación y
// vencimiento: max(round(Δ/24h), 0). Determinística y sin side effects.
// Si falta cualquiera de las fechas devuelve nil y el registro de vacuna
// se escribe igual, sin validez.
func ValidityDays(appliedAt, expiresAt *time.Time) *int {
	if appliedAt == nil || expiresAt == nil {
		return nil
	}

	diff := expiresAt.Sub(*appliedAt).Hours() / 24
	days := int(math.Round(diff))
	if days < 0 {
		days = 0
	}
	return &days
}
