package events

import (
	"context"
	"encoding/json"
	"errors"
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
	r.Route("/animals/{animalID}/events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc, owners, vets))
		er.Get("/", listEventsHandler(svc, owners, vets))

		er.Patch("/{eventID}", updateEventHandler(svc, owners, vets))
		er.Delete("/{eventID}", deleteEventHandler(svc, owners, vets))
	})
}

// createEventRequest es el cuerpo para registrar un evento del animal.
// Los campos vaccine_* solo aplican cuando type = VACCINATION.
type createEventRequest struct {
	Type        EventType `json:"type" enums:"VACCINATION,INSEMINATION,REPRODUCTION,BIRTH"`
	EventDate   string    `json:"event_date"` // yyyy-mm-dd
	Description string    `json:"description"`

	VaccineName   string `json:"vaccine_name,omitempty"`
	VaccineExpiry string `json:"vaccine_expiry,omitempty"` // yyyy-mm-dd
}

type updateEventRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Type        *EventType `json:"type"`
	EventDate   *string    `json:"event_date"` // yyyy-mm-dd
	Description *string    `json:"description"`
}

// eventResponse representa un evento del historial devuelto por la API.
type eventResponse struct {
	ID          string    `json:"id"`
	AnimalID    string    `json:"animal_id"`
	Type        EventType `json:"type"`
	EventDate   string    `json:"event_date"` // yyyy-mm-dd
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// createEventHandler godoc
// @Summary Registrar evento del animal
// @Description Crea un evento (vacunación, inseminación, reproducción o nacimiento). Si type=VACCINATION y viene vaccine_name, se escribe además el registro de vacuna con la validez derivada de vaccine_expiry. Los dos writes son secuenciales, sin rollback del primero. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>`.
// @Tags events
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body createEventRequest true "Datos del evento; fechas en yyyy-mm-dd"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / event_date inválida / tipo desconocido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/events [post]
func createEventHandler(svc *Service, owners AnimalOwnerLookup, vets VetLink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		animalID := chi.URLParam(r, "animalID")
		if !authorize(r.Context(), owners, vets, animalID, claims.UserID, w) {
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		eventDate := dates.ParseStorage(req.EventDate)
		if eventDate == nil {
			http.Error(w, "event_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var vac *VaccineInput
		if strings.TrimSpace(req.VaccineName) != "" {
			// vaccine_expiry inválida o ausente => validez nil, no error.
			vac = &VaccineInput{
				Name:      req.VaccineName,
				ExpiresAt: dates.ParseStorage(req.VaccineExpiry),
			}
		}

		e, err := svc.Record(r.Context(), animalID, CreateInput{
			Type:        req.Type,
			EventDate:   *eventDate,
			Description: req.Description,
		}, vac)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Listar eventos de un animal
// @Description Historial completo del animal, fecha de evento descendente. Dueño o veterinario vinculado.
// @Tags events
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/events [get]
func listEventsHandler(svc *Service, owners AnimalOwnerLookup, vets VetLink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		animalID := chi.URLParam(r, "animalID")
		if !authorize(r.Context(), owners, vets, animalID, claims.UserID, w) {
			return
		}

		items, err := svc.ListByAnimal(r.Context(), animalID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updateEventHandler(svc *Service, owners AnimalOwnerLookup, vets VetLink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		animalID := chi.URLParam(r, "animalID")
		if !authorize(r.Context(), owners, vets, animalID, claims.UserID, w) {
			return
		}

		var req updateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Type:        req.Type,
			Description: req.Description,
		}
		if req.EventDate != nil {
			t := dates.ParseStorage(*req.EventDate)
			if t == nil {
				http.Error(w, "event_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.EventDate = t
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "eventID"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "event not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toEventResponse(e))
	}
}

// deleteEventHandler godoc
// @Summary Excluir evento
// @Description Borra el evento del animal. Cero filas afectadas => 404.
// @Tags events
// @Param animalID path string true "ID del animal"
// @Param eventID path string true "ID del evento"
// @Success 204 {string} string ""
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /animals/{animalID}/events/{eventID} [delete]
func deleteEventHandler(svc *Service, owners AnimalOwnerLookup, vets VetLink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		animalID := chi.URLParam(r, "animalID")
		if !authorize(r.Context(), owners, vets, animalID, claims.UserID, w) {
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "eventID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "event not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// authorize: dueño del animal siempre; veterinario vinculado al dueño también.
// Escribe la respuesta de error y devuelve false si no pasa.
func authorize(ctx context.Context, owners AnimalOwnerLookup, vets VetLink, animalID, callerID string, w http.ResponseWriter) bool {
	farmerID, err := owners.OwnerOf(ctx, animalID)
	if err != nil {
		http.Error(w, "animal not found", http.StatusNotFound)
		return false
	}
	if farmerID == callerID {
		return true
	}
	linked, err := vets.IsLinked(ctx, callerID, farmerID)
	if err != nil || !linked {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func toEventResponse(e AnimalEvent) eventResponse {
	d := e.EventDate
	return eventResponse{
		ID:          e.ID,
		AnimalID:    e.AnimalID,
		Type:        e.Type,
		EventDate:   dates.FormatStorage(&d),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
