package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Errores del motor de transacciones de inventario.
	ErrInsufficientStock       = errors.New("stock insuficiente")
	ErrDocumentNotValidatable  = errors.New("el documento no está en un estado validable")
	ErrInvalidTransfer         = errors.New("ubicación origen y destino deben ser distintas")
	ErrEmptyDocument           = errors.New("el documento no tiene líneas con cantidad efectiva")
	ErrInvalidAdjustment       = errors.New("datos de ajuste inválidos")
	ErrInvalidStatusTransition = errors.New("transición de estado no permitida")
	ErrConcurrentModification  = errors.New("conflicto de concurrencia, reintente la operación")
)
