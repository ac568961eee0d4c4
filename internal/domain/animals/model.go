package animals

import "time"

// Sex define el sexo del animal.
// @Enum M, F
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Animal representa un animal del rebaño registrado por un fazendeiro.
// FarmerID se fija en el create con el usuario autenticado y no se toca
// nunca más: los payloads de update lo omiten para no pisar el valor.
type Animal struct {
	ID       string
	FarmerID string

	Name  string
	Breed string
	Sex   Sex

	BirthDate *time.Time

	// Linaje opcional (padre/madre). Nullable en storage => puntero acá.
	SireName     *string
	SireRegistry *string
	SireBreed    *string
	DamName      *string
	DamRegistry  *string
	DamBreed     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
