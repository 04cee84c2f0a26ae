package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Una industria desconocida NO es un error: el lookup devuelve ausencia.
var (
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidAssumptions = errors.New("supuestos inválidos")
)
