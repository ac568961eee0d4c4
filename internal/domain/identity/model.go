package identity

// Role clasifica la cuenta. Se fija una sola vez en el registro y decide
// qué queries emite el cliente (ver domain/home). Variante cerrada: todo
// dispatch por rol debe hacer switch exhaustivo sobre estos valores.
// @Enum farmer, veterinarian
type Role string

const (
	RoleFarmer       Role = "farmer"
	RoleVeterinarian Role = "veterinarian"
)

// Valid reporta si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleVeterinarian:
		return true
	}
	return false
}

// User es la fila de la tabla users. El id coincide con el id de la cuenta
// en el proveedor de auth (el proveedor crea la fila, nosotros completamos
// nombre/rol en el registro).
type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}
