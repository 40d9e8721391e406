package workflow

import "github.com/pkg/errors"

// Taxonomía de errores del flujo de aprobación. Los controladores los traducen
// a códigos HTTP (404/409/403/400), el flujo no hace reintentos.
var (
	ErrNotFound          = errors.New("solicitud no encontrada")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrUnauthorized      = errors.New("el rol del usuario no corresponde a la etapa actual")
	ErrValidation        = errors.New("datos de la solicitud inválidos")

	// ErrConflict lo devuelve el store cuando el check-and-set sobre el estado
	// no afecta filas (estado ya cambiado por otra transición concurrente)
	ErrConflict = errors.New("el estado de la solicitud cambió, actualice y reintente")
)
