package dates

import (
	"strings"
	"time"
)

const (
	// StorageLayout es el formato que guarda la base (DATE / yyyy-mm-dd).
	StorageLayout = "2006-01-02"
	// DisplayLayout es el formato que ve el usuario final (dd/mm/yyyy).
	DisplayLayout = "02/01/2006"
)

// ToDisplay convierte una fecha en formato storage (yyyy-mm-dd) a display
// (dd/mm/yyyy). Entrada inválida o vacía devuelve "" — nunca error: los
// callers tratan "" como "campo no seteado".
func ToDisplay(storage string) string {
	storage = strings.TrimSpace(storage)
	if storage == "" {
		return ""
	}
	t, err := time.Parse(StorageLayout, storage)
	if err != nil {
		return ""
	}
	return t.Format(DisplayLayout)
}

// ToStorage convierte una fecha display (dd/mm/yyyy) a storage (yyyy-mm-dd).
// Valida calendario real (rechaza 31/02/2024, 29/02 en año no bisiesto, etc.)
// devolviendo "" en vez de un valor parcialmente parseado.
func ToStorage(display string) string {
	display = strings.TrimSpace(display)
	if display == "" {
		return ""
	}
	t, err := time.Parse(DisplayLayout, display)
	if err != nil {
		return ""
	}
	// time.Parse acepta día/mes sin cero a la izquierda ("2/1/2024");
	// exigimos round-trip exacto para aceptar solo la forma dd/mm/yyyy.
	if t.Format(DisplayLayout) != display {
		return ""
	}
	return t.Format(StorageLayout)
}

// ParseStorage parsea una fecha storage a *time.Time (UTC, medianoche).
// Inválida o vacía => nil.
func ParseStorage(storage string) *time.Time {
	storage = strings.TrimSpace(storage)
	if storage == "" {
		return nil
	}
	t, err := time.Parse(StorageLayout, storage)
	if err != nil {
		return nil
	}
	return &t
}

// FormatStorage formatea un *time.Time como fecha storage. nil => "".
func FormatStorage(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(StorageLayout)
}
