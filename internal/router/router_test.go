package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"livestock-records/internal/router"
)

func TestHTTP_EndToEnd_FarmerAndVet(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Registro de fazendeiro y veterinario (provider local en memoria)
	farmerID := registerUser(t, ts.URL, "/auth/register/farmer", map[string]any{
		"name":     "João Silva",
		"email":    "joao@fazenda.com",
		"password": "secret123",
		"city":     "Goiânia",
		"state":    "GO",
	})
	vetID := registerUser(t, ts.URL, "/auth/register/veterinarian", map[string]any{
		"name":     "Dra. Ana",
		"email":    "ana@vet.com",
		"password": "secret123",
		"crmv":     "GO-1234",
		"city":     "Goiânia",
		"state":    "GO",
	})

	// 2) Login ok y login con password incorrecta
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "joao@fazenda.com",
			"password": "secret123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "joao@fazenda.com",
			"password": "wrong",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad login, got %d", st)
		}
	}

	// 3) Fazendeiro crea dos animales; el listado viene por nombre ascendente
	zebuID := createAnimal(t, ts.URL, farmerID, map[string]any{
		"name":       "Zebu",
		"breed":      "Nelore",
		"sex":        "M",
		"birth_date": "15/03/2022",
		"sire_name":  "Trovão",
	})
	_ = createAnimal(t, ts.URL, farmerID, map[string]any{
		"name":  "Aurora",
		"breed": "Girolando",
		"sex":   "F",
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/animals", farmerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list animals, got %d body=%s", st, string(body))
		}
		var list []struct {
			Name      string `json:"name"`
			BirthDate string `json:"birth_date"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 2 || list[0].Name != "Aurora" || list[1].Name != "Zebu" {
			t.Fatalf("expected [Aurora, Zebu], got %s", string(body))
		}
		if list[1].BirthDate != "15/03/2022" {
			t.Fatalf("expected birth_date round trip dd/mm/yyyy, got %q", list[1].BirthDate)
		}
	}

	// 4) Fecha de calendario inválida => 400, no null silencioso
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals", farmerID, map[string]any{
			"name":       "Fantasma",
			"sex":        "F",
			"birth_date": "31/02/2024",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid birth_date, got %d", st)
		}
	}

	// 5) Vet sin vínculo no accede al animal
	{
		st, _ := doReq(t, ts.URL, "GET", "/animals/"+zebuID, vetID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 before assignment, got %d", st)
		}
	}

	// 6) Fazendeiro lista el directorio y se vincula al veterinario
	{
		st, body := doReq(t, ts.URL, "GET", "/veterinarians", farmerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 directory, got %d body=%s", st, string(body))
		}
		var vets []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		_ = json.Unmarshal(body, &vets)
		if len(vets) != 1 || vets[0].ID != vetID || vets[0].Name != "Dra. Ana" {
			t.Fatalf("expected enriched directory with vet, got %s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/veterinarians/"+vetID+"/assign", farmerID, nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 assign, got %d body=%s", st, string(body))
		}
	}

	// 7) Vet ve al fazendeiro entre sus clientes y ya accede al animal
	{
		st, body := doReq(t, ts.URL, "GET", "/me/clients", vetID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 clients, got %d body=%s", st, string(body))
		}
		var clients []struct {
			FarmerID string `json:"farmer_id"`
			City     string `json:"city"`
			Name     string `json:"name"`
		}
		_ = json.Unmarshal(body, &clients)
		if len(clients) != 1 || clients[0].FarmerID != farmerID || clients[0].City != "Goiânia" {
			t.Fatalf("expected farmer as client, got %s", string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/animals/"+zebuID, vetID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal by linked vet, got %d", st)
		}
	}

	// 8) Home despacha por rol: lista correcta para cada cuenta
	{
		st, body := doReq(t, ts.URL, "GET", "/home", farmerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 home farmer, got %d body=%s", st, string(body))
		}
		var home struct {
			Role    string           `json:"role"`
			Animals []map[string]any `json:"animals"`
			Clients []map[string]any `json:"clients"`
		}
		_ = json.Unmarshal(body, &home)
		if home.Role != "farmer" || len(home.Animals) != 2 || len(home.Clients) != 0 {
			t.Fatalf("expected farmer home with herd only, got %s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/home", vetID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 home vet, got %d body=%s", st, string(body))
		}
		var home struct {
			Role    string           `json:"role"`
			Animals []map[string]any `json:"animals"`
			Clients []map[string]any `json:"clients"`
		}
		_ = json.Unmarshal(body, &home)
		if home.Role != "veterinarian" || len(home.Clients) != 1 || len(home.Animals) != 0 {
			t.Fatalf("expected vet home with clients only, got %s", string(body))
		}
	}

	// 9) Evento VACCINATION escribe también la vacuna con validez derivada
	eventID := createEvent(t, ts.URL, farmerID, zebuID, map[string]any{
		"type":           "VACCINATION",
		"event_date":     "2024-06-01",
		"description":    "aftosa",
		"vaccine_name":   "Aftosa",
		"vaccine_expiry": "2025-06-01",
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/"+zebuID+"/vaccines", farmerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list vaccines, got %d body=%s", st, string(body))
		}
		var vaccines []struct {
			Name         string `json:"name"`
			AppliedAt    string `json:"applied_at"`
			ValidityDays *int   `json:"validity_days"`
		}
		_ = json.Unmarshal(body, &vaccines)
		if len(vaccines) != 1 || vaccines[0].Name != "Aftosa" {
			t.Fatalf("expected vaccine row after VACCINATION event, got %s", string(body))
		}
		if vaccines[0].AppliedAt != "2024-06-01" {
			t.Fatalf("expected applied_at = event date, got %q", vaccines[0].AppliedAt)
		}
		if vaccines[0].ValidityDays == nil || *vaccines[0].ValidityDays != 365 {
			t.Fatalf("expected validity_days 365, got %v", vaccines[0].ValidityDays)
		}
	}

	// 10) Evento no-VACCINATION nunca escribe vacuna, aunque venga payload
	_ = createEvent(t, ts.URL, farmerID, zebuID, map[string]any{
		"type":         "BIRTH",
		"event_date":   "2024-07-01",
		"vaccine_name": "NoDebeEscribirse",
	})
	{
		_, body := doReq(t, ts.URL, "GET", "/animals/"+zebuID+"/vaccines", farmerID, nil)
		var vaccines []map[string]any
		_ = json.Unmarshal(body, &vaccines)
		if len(vaccines) != 1 {
			t.Fatalf("expected still 1 vaccine after BIRTH event, got %s", string(body))
		}
	}

	// 11) Listado de eventos fecha descendente
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/"+zebuID+"/events", farmerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list events, got %d body=%s", st, string(body))
		}
		var events []struct {
			EventDate string `json:"event_date"`
		}
		_ = json.Unmarshal(body, &events)
		if len(events) != 2 || events[0].EventDate != "2024-07-01" {
			t.Fatalf("expected events newest first, got %s", string(body))
		}
	}

	// 12) Delete: 204 la primera vez, 404 la segunda
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/animals/"+zebuID+"/events/"+eventID, farmerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete event, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/animals/"+zebuID+"/events/"+eventID, farmerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting twice, got %d", st)
		}
	}

	// 13) Update no toca el dueño
	{
		st, body := doReq(t, ts.URL, "PUT", "/animals/"+zebuID, farmerID, map[string]any{
			"name":  "Zebu Campeão",
			"breed": "Nelore",
			"sex":   "M",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update animal, got %d body=%s", st, string(body))
		}
		var resp struct {
			FarmerID string `json:"farmer_id"`
			Name     string `json:"name"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.FarmerID != farmerID || resp.Name != "Zebu Campeão" {
			t.Fatalf("expected same owner after update, got %s", string(body))
		}
	}
}

func TestHTTP_Register_DuplicateEmail(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	payload := map[string]any{
		"name":     "João Silva",
		"email":    "joao@fazenda.com",
		"password": "secret123",
	}
	_ = registerUser(t, ts.URL, "/auth/register/farmer", payload)

	st, _ := doReq(t, ts.URL, "POST", "/auth/register/farmer", "", payload)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate email, got %d", st)
	}
}

func TestHTTP_UnauthenticatedRequestsRejected(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, path := range []string{"/animals", "/veterinarians", "/me/clients", "/home", "/me"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 on %s without auth, got %d", path, st)
		}
	}
}

func registerUser(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, "", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
	}

	var resp struct {
		UserID string `json:"user_id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.UserID == "" {
		t.Fatalf("register: missing user_id body=%s", string(body))
	}
	return resp.UserID
}

func createAnimal(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create animal: missing id body=%s", string(body))
	}
	return resp.ID
}

func createEvent(t *testing.T, baseURL, userID, animalID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals/"+animalID+"/events", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create event, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create event: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
