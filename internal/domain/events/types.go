package events

// EventType es la enumeración cerrada de eventos del animal.
type EventType string

const (
	EventTypeVaccination  EventType = "VACCINATION"
	EventTypeInsemination EventType = "INSEMINATION"
	EventTypeReproduction EventType = "REPRODUCTION"
	EventTypeBirth        EventType = "BIRTH"
)

// Valid reporta si el tipo pertenece a la enumeración.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeVaccination, EventTypeInsemination, EventTypeReproduction, EventTypeBirth:
		return true
	}
	return false
}
