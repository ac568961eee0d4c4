package farmers

import "time"

// Farmer es el perfil de fazendeiro. El ID coincide con el user id del
// proveedor de auth (misma convención que veterinarians).
type Farmer struct {
	ID string

	Neighborhood string
	PostalCode   string
	City         string
	State        string

	CreatedAt time.Time
}
