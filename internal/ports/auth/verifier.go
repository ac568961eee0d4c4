package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Authenticator autentica email+password contra el proveedor hospedado.
// El error se propaga tal cual; la reclasificación de mensajes conocidos
// ("invalid login credentials", etc.) vive en el dominio identity.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
}

// Registrar da de alta una cuenta en el proveedor y devuelve el user id.
// El perfil (tabla users) y la fila por rol se escriben después, por
// separado, sin transacción que los una.
type Registrar interface {
	SignUp(ctx context.Context, email, password string) (string, error)
}
