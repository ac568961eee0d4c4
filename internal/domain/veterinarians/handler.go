package veterinarians

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"livestock-records/internal/domain/identity"
	"livestock-records/internal/domain/validation"
	"livestock-records/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/auth/register/veterinarian", registerVetHandler(svc))

	r.Get("/veterinarians", listVetsHandler(svc))

	// El fazendeiro autenticado se vincula al veterinario elegido.
	r.Post("/veterinarians/{vetID}/assign", assignVetHandler(svc))

	// Clientes del veterinario autenticado.
	r.Get("/me/clients", listClientsHandler(svc))
}

type registerVetRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	CRMV  string `json:"crmv"`
	Phone string `json:"phone"`

	Number       string  `json:"number"`
	Neighborhood string  `json:"neighborhood"`
	PostalCode   string  `json:"postal_code"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Complement   *string `json:"complement,omitempty"`
}

type vetResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`

	CRMV  string `json:"crmv"`
	Phone string `json:"phone,omitempty"`

	Number       string  `json:"number,omitempty"`
	Neighborhood string  `json:"neighborhood,omitempty"`
	PostalCode   string  `json:"postal_code,omitempty"`
	City         string  `json:"city,omitempty"`
	State        string  `json:"state,omitempty"`
	Complement   *string `json:"complement,omitempty"`
}

type assignmentResponse struct {
	ID        string    `json:"id"`
	VetID     string    `json:"veterinarian_id"`
	FarmerID  string    `json:"farmer_id"`
	CreatedAt time.Time `json:"created_at"`
}

type clientResponse struct {
	FarmerID string `json:"farmer_id"`
	City     string `json:"city,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

func registerVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerVetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Name:         req.Name,
			Email:        req.Email,
			Password:     req.Password,
			CRMV:         req.CRMV,
			Phone:        req.Phone,
			Number:       req.Number,
			Neighborhood: req.Neighborhood,
			PostalCode:   req.PostalCode,
			City:         req.City,
			State:        req.State,
			Complement:   req.Complement,
		})
		if err != nil {
			switch {
			case validation.IsValidation(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, identity.ErrAlreadyRegistered):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, err.Error(), http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{
			"user_id": u.ID,
			"name":    u.Name,
			"email":   u.Email,
			"role":    string(u.Role),
		})
	}
}

func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		entries, err := svc.Directory(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vetResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, vetResponse{
				ID:           e.ID,
				Name:         e.Name,
				Email:        e.Email,
				CRMV:         e.CRMV,
				Phone:        e.Phone,
				Number:       e.Number,
				Neighborhood: e.Neighborhood,
				PostalCode:   e.PostalCode,
				City:         e.City,
				State:        e.State,
				Complement:   e.Complement,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func assignVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.Assign(r.Context(), chi.URLParam(r, "vetID"), claims.UserID)
		if err != nil {
			if validation.IsValidation(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, assignmentResponse{
			ID:        a.ID,
			VetID:     a.VetID,
			FarmerID:  a.FarmerID,
			CreatedAt: a.CreatedAt,
		})
	}
}

func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		clients, err := svc.ListClients(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]clientResponse, 0, len(clients))
		for _, c := range clients {
			out = append(out, clientResponse{
				FarmerID: c.FarmerID,
				City:     c.City,
				Name:     c.Name,
				Email:    c.Email,
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
