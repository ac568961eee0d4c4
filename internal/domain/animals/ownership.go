package animals

import "context"

// OwnerOf expone el farmerID dueño de un animal.
// Evita ciclos de import entre módulos (events/vaccines necesitan autorizar
// sin importar el paquete completo).
func (s *Service) OwnerOf(ctx context.Context, animalID string) (string, error) {
	a, err := s.GetByID(ctx, animalID)
	if err != nil {
		return "", err
	}
	return a.FarmerID, nil
}
