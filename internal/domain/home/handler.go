package home

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"livestock-records/internal/domain/animals"
	"livestock-records/internal/domain/identity"
	"livestock-records/internal/domain/veterinarians"
	"livestock-records/internal/middleware"
	"livestock-records/internal/platform/dates"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/home", overviewHandler(svc))
}

type overviewResponse struct {
	Role string `json:"role"`

	Animals []homeAnimal `json:"animals,omitempty"`
	Clients []homeClient `json:"clients,omitempty"`
}

type homeAnimal struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Breed     string `json:"breed,omitempty"`
	Sex       string `json:"sex"`
	BirthDate string `json:"birth_date,omitempty"` // dd/mm/yyyy
}

type homeClient struct {
	FarmerID string `json:"farmer_id"`
	City     string `json:"city,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

func overviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ov, err := svc.Overview(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrNotFound):
				http.Error(w, "user not found", http.StatusNotFound)
			case errors.Is(err, ErrUnknownRole):
				http.Error(w, err.Error(), http.StatusInternalServerError)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toOverviewResponse(ov))
	}
}

func toOverviewResponse(ov Overview) overviewResponse {
	out := overviewResponse{Role: string(ov.Role)}

	for _, a := range ov.Animals {
		out.Animals = append(out.Animals, toHomeAnimal(a))
	}
	for _, c := range ov.Clients {
		out.Clients = append(out.Clients, toHomeClient(c))
	}
	return out
}

func toHomeAnimal(a animals.Animal) homeAnimal {
	return homeAnimal{
		ID:        a.ID,
		Name:      a.Name,
		Breed:     a.Breed,
		Sex:       string(a.Sex),
		BirthDate: dates.ToDisplay(dates.FormatStorage(a.BirthDate)),
	}
}

func toHomeClient(c veterinarians.Client) homeClient {
	return homeClient{
		FarmerID: c.FarmerID,
		City:     c.City,
		Name:     c.Name,
		Email:    c.Email,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
