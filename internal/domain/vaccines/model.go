package vaccines

import "time"

// Vaccine es el registro de aplicación de una vacuna a un animal.
// ValidityDays se deriva UNA vez al crear (aplicación vs vencimiento);
// nunca se guarda la fecha de vencimiento cruda.
type Vaccine struct {
	ID       string
	AnimalID string

	Name      string
	AppliedAt time.Time

	ValidityDays *int

	CreatedAt time.Time
}
