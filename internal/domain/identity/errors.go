package identity

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// Errores de auth reclasificados a mensaje fijo de dominio.
	ErrInvalidCredentials = errors.New("e-mail ou senha incorretos")
	ErrAlreadyRegistered  = errors.New("já existe um usuário cadastrado com este e-mail")
)

// ClassifyAuthError mapea mensajes conocidos del proveedor de auth a errores
// de dominio con mensaje fijo. Match por substring case-insensitive — frágil
// a propósito de cambios de proveedor/locale, por eso vive SOLO acá y nunca
// inline en los call sites. Todo lo demás pasa sin tocar.
func ClassifyAuthError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "invalid login credentials"):
		return ErrInvalidCredentials
	case strings.Contains(msg, "already registered"):
		return ErrAlreadyRegistered
	}
	return err
}
