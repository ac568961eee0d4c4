package vaccines

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"livestock-records/internal/middleware"
	"livestock-records/internal/platform/dates"

	"github.com/go-chi/chi/v5"
)

// AnimalOwnerLookup evita importar el paquete animals (rompe ciclos).
type AnimalOwnerLookup interface {
	OwnerOf(ctx context.Context, animalID string) (string, error)
}

type VetLink interface {
	IsLinked(ctx context.Context, vetID, farmerID string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, owners AnimalOwnerLookup, vets VetLink) {
	r.Get("/animals/{animalID}/vaccines", listVaccinesHandler(svc, owners, vets))
}

type vaccineResponse struct {
	ID           string    `json:"id"`
	AnimalID     string    `json:"animal_id"`
	Name         string    `json:"name"`
	AppliedAt    string    `json:"applied_at"` // yyyy-mm-dd (formato storage)
	ValidityDays *int      `json:"validity_days,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func listVaccinesHandler(svc *Service, owners AnimalOwnerLookup, vets VetLink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		animalID := chi.URLParam(r, "animalID")
		farmerID, err := owners.OwnerOf(r.Context(), animalID)
		if err != nil {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		if farmerID != claims.UserID {
			linked, err := vets.IsLinked(r.Context(), claims.UserID, farmerID)
			if err != nil || !linked {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		items, err := svc.ListByAnimal(r.Context(), animalID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vaccineResponse, 0, len(items))
		for _, v := range items {
			applied := v.AppliedAt
			out = append(out, vaccineResponse{
				ID:           v.ID,
				AnimalID:     v.AnimalID,
				Name:         v.Name,
				AppliedAt:    dates.FormatStorage(&applied),
				ValidityDays: v.ValidityDays,
				CreatedAt:    v.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
