package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrHasChildren  = errors.New("la categoría tiene subcategorías")
	ErrCycle        = errors.New("el padre propuesto crearía un ciclo")
)
