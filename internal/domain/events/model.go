package events

import "time"

// AnimalEvent es un registro del historial del animal (vacunación,
// inseminación, reproducción, nacimiento). EventDate es fecha de calendario
// en formato storage (yyyy-mm-dd); no hay conversión display para eventos.
type AnimalEvent struct {
	ID       string
	AnimalID string

	Type        EventType
	EventDate   time.Time
	Description string

	CreatedAt time.Time
}
