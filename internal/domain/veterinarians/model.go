package veterinarians

import "time"

// Veterinarian es el perfil profesional. El ID coincide con el user id del
// proveedor de auth; nombre y email viven en la tabla users y se agregan
// al listar (ver DirectoryEntry).
type Veterinarian struct {
	ID string

	CRMV  string // registro profesional
	Phone string

	Number       string
	Neighborhood string
	PostalCode   string
	City         string
	State        string
	Complement   *string

	CreatedAt time.Time
}

// Assignment vincula un veterinario con un fazendeiro. Se crea una fila por
// acción de selección; este layer NO garantiza unicidad — si el storage
// define un constraint único, es responsabilidad de él rechazar duplicados.
type Assignment struct {
	ID       string
	VetID    string
	FarmerID string

	CreatedAt time.Time
}

// DirectoryEntry es un veterinario enriquecido con su perfil de usuario,
// el shape que consume la pantalla de selección.
type DirectoryEntry struct {
	Veterinarian
	Name  string
	Email string
}

// Client es un fazendeiro vinculado al veterinario, enriquecido con
// nombre/email del usuario dueño.
type Client struct {
	FarmerID string
	City     string
	Name     string
	Email    string
}
