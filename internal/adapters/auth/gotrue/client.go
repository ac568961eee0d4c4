package gotrue

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"livestock-records/internal/platform/httpclient"
	"livestock-records/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("gotrue client not configured")
	ErrUnauthorized  = errors.New("gotrue unauthorized")
	ErrUpstream      = errors.New("gotrue upstream error")
)

// Config del cliente GoTrue (el servidor de auth hospedado).
// BaseURL y APIKey normalmente vienen de env vars en quien lo instancia.
type Config struct {
	BaseURL string
	APIKey  string

	Timeout time.Duration
}

// Client habla con la API REST de GoTrue: signup, password grant y
// lookup del usuario del token. Implementa auth.Authenticator y
// auth.Registrar.
type Client struct {
	apiKey string
	http   *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		apiKey: strings.TrimSpace(cfg.APIKey),
		http:   hc,
	}, nil
}

// NewClientWithHTTP permite inyectar el httpclient (tests).
func NewClientWithHTTP(apiKey string, hc *httpclient.Client) *Client {
	return &Client{apiKey: strings.TrimSpace(apiKey), http: hc}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SignIn hace el password grant. Los errores del upstream se devuelven con
// el body textual intacto: el dominio los clasifica por substring
// ("Invalid login credentials", etc.), así que acá no se reinterpreta nada.
func (c *Client) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	if !c.IsConfigured() {
		return auth.Session{}, ErrNotConfigured
	}

	var out tokenResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/token?grant_type=password", c.headers(""), map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return auth.Session{}, fmt.Errorf("gotrue signin: %w", err)
	}

	userID := strings.TrimSpace(out.User.ID)
	if userID == "" || out.AccessToken == "" {
		return auth.Session{}, fmt.Errorf("%w: token response missing user", ErrUpstream)
	}

	return auth.Session{
		UserID:       userID,
		Email:        strings.TrimSpace(out.User.Email),
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    out.ExpiresIn,
	}, nil
}

type signupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`

	// Con confirmación de email activa GoTrue anida el usuario.
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

// SignUp registra la cuenta y devuelve el user id del proveedor.
// Igual que SignIn, propaga el body del upstream sin reinterpretar
// ("User already registered" lo clasifica el dominio).
func (c *Client) SignUp(ctx context.Context, email, password string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	var out signupResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/signup", c.headers(""), map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return "", fmt.Errorf("gotrue signup: %w", err)
	}

	id := strings.TrimSpace(out.ID)
	if id == "" {
		id = strings.TrimSpace(out.User.ID)
	}
	if id == "" {
		return "", fmt.Errorf("%w: signup response missing user id", ErrUpstream)
	}
	return id, nil
}

// UserFromToken resuelve el usuario dueño de un access token.
func (c *Client) UserFromToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	err := c.http.DoJSON(ctx, http.MethodGet, "/user", c.headers(token), nil, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && (he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("gotrue user lookup: %w", err)
	}

	id := strings.TrimSpace(out.ID)
	if id == "" {
		return auth.Claims{}, fmt.Errorf("%w: user response missing id", ErrUpstream)
	}
	return auth.Claims{UserID: id, Email: strings.TrimSpace(out.Email)}, nil
}

func (c *Client) headers(bearer string) map[string]string {
	h := map[string]string{}
	if c.apiKey != "" {
		h["apikey"] = c.apiKey
	}
	if bearer != "" {
		h["Authorization"] = "Bearer " + bearer
	}
	return h
}
