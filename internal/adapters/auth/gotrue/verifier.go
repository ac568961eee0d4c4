package gotrue

import (
	"context"
	"errors"
	"strings"

	"livestock-records/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier resolviendo el token contra /user.
// Se instancia desde el router solo cuando hay config de GoTrue; sin config
// el middleware corre en modo dev.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.UserFromToken(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return auth.Claims{}, errors.New("gotrue claims missing user id")
	}
	return claims, nil
}
