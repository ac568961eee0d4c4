package farmers

import (
	"encoding/json"
	"errors"
	"net/http"

	"livestock-records/internal/domain/identity"
	"livestock-records/internal/domain/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/auth/register/farmer", registerFarmerHandler(svc))
}

type registerFarmerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	Neighborhood string `json:"neighborhood"`
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type registerFarmerResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func registerFarmerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerFarmerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Name:         req.Name,
			Email:        req.Email,
			Password:     req.Password,
			Neighborhood: req.Neighborhood,
			PostalCode:   req.PostalCode,
			City:         req.City,
			State:        req.State,
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

		writeJSON(w, http.StatusCreated, registerFarmerResponse{
			UserID: u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Role:   string(u.Role),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
