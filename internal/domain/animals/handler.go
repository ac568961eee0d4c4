package animals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"livestock-records/internal/domain/validation"
	"livestock-records/internal/middleware"
	"livestock-records/internal/platform/dates"

	"github.com/go-chi/chi/v5"
)

// VetLink responde si un veterinario está vinculado a un fazendeiro.
// Lo implementa veterinarians.Service; interfaz local para no importar
// ese paquete (mismo truco que OwnerOf).
type VetLink interface {
	IsLinked(ctx context.Context, vetID, farmerID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, vets VetLink) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))

		// Perfil del animal (dueño o veterinario vinculado)
		ar.Get("/{animalID}", getAnimalHandler(svc, vets))
		ar.Put("/{animalID}", updateAnimalHandler(svc, vets))
	})
}

// animalPayload es el shape de la app: fechas en dd/mm/yyyy,
// opcionales ausentes cuando son null en storage.
type animalPayload struct {
	Name      string `json:"name"`
	Breed     string `json:"breed"`
	Sex       string `json:"sex"`        // M | F
	BirthDate string `json:"birth_date"` // dd/mm/yyyy, opcional

	SireName     *string `json:"sire_name,omitempty"`
	SireRegistry *string `json:"sire_registry,omitempty"`
	SireBreed    *string `json:"sire_breed,omitempty"`
	DamName      *string `json:"dam_name,omitempty"`
	DamRegistry  *string `json:"dam_registry,omitempty"`
	DamBreed     *string `json:"dam_breed,omitempty"`
}

type animalResponse struct {
	ID        string `json:"id"`
	FarmerID  string `json:"farmer_id"`
	Name      string `json:"name"`
	Breed     string `json:"breed"`
	Sex       string `json:"sex"`
	BirthDate string `json:"birth_date,omitempty"` // dd/mm/yyyy

	SireName     *string `json:"sire_name,omitempty"`
	SireRegistry *string `json:"sire_registry,omitempty"`
	SireBreed    *string `json:"sire_breed,omitempty"`
	DamName      *string `json:"dam_name,omitempty"`
	DamRegistry  *string `json:"dam_registry,omitempty"`
	DamBreed     *string `json:"dam_breed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req animalPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := parseBirthDate(req.BirthDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:         req.Name,
			Breed:        req.Breed,
			Sex:          Sex(strings.ToUpper(strings.TrimSpace(req.Sex))),
			BirthDate:    bd,
			SireName:     req.SireName,
			SireRegistry: req.SireRegistry,
			SireBreed:    req.SireBreed,
			DamName:      req.DamName,
			DamRegistry:  req.DamRegistry,
			DamBreed:     req.DamBreed,
		})
		if err != nil {
			if validation.IsValidation(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func listAnimalsHandler(svc *Service) http.HandlerFunc {
	// Solo los animales del fazendeiro autenticado, nombre ascendente.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByFarmer(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getAnimalHandler(svc *Service, vets VetLink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		if !canAccess(r.Context(), vets, claims.UserID, a.FarmerID) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func updateAnimalHandler(svc *Service, vets VetLink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		animalID := chi.URLParam(r, "animalID")
		current, err := svc.GetByID(r.Context(), animalID)
		if err != nil {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		if !canAccess(r.Context(), vets, claims.UserID, current.FarmerID) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req animalPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := parseBirthDate(req.BirthDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), animalID, UpdateInput{
			Name:         req.Name,
			Breed:        req.Breed,
			Sex:          Sex(strings.ToUpper(strings.TrimSpace(req.Sex))),
			BirthDate:    bd,
			SireName:     req.SireName,
			SireRegistry: req.SireRegistry,
			SireBreed:    req.SireBreed,
			DamName:      req.DamName,
			DamRegistry:  req.DamRegistry,
			DamBreed:     req.DamBreed,
		})
		if err != nil {
			switch {
			case validation.IsValidation(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

// canAccess: dueño siempre; si no, veterinario vinculado al dueño.
func canAccess(ctx context.Context, vets VetLink, callerID, farmerID string) bool {
	if callerID == farmerID {
		return true
	}
	if vets == nil {
		return false
	}
	linked, err := vets.IsLinked(ctx, callerID, farmerID)
	return err == nil && linked
}

// parseBirthDate acepta "" (campo no seteado) o dd/mm/yyyy con calendario
// válido. Cualquier otra cosa es 400, no un null silencioso.
func parseBirthDate(display string) (*time.Time, error) {
	if strings.TrimSpace(display) == "" {
		return nil, nil
	}
	iso := dates.ToStorage(display)
	if iso == "" {
		return nil, errors.New("birth_date must be DD/MM/YYYY")
	}
	return dates.ParseStorage(iso), nil
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:           a.ID,
		FarmerID:     a.FarmerID,
		Name:         a.Name,
		Breed:        a.Breed,
		Sex:          string(a.Sex),
		BirthDate:    dates.ToDisplay(dates.FormatStorage(a.BirthDate)),
		SireName:     a.SireName,
		SireRegistry: a.SireRegistry,
		SireBreed:    a.SireBreed,
		DamName:      a.DamName,
		DamRegistry:  a.DamRegistry,
		DamBreed:     a.DamBreed,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en handlers de distintos módulos;
// si se repite en más lugares conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
