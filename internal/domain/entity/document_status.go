package entity

import "github.com/jhoicas/stockmaster-api/internal/domain"

// DocumentStatus estado del ciclo de vida de un documento de inventario.
// Recepciones, entregas y traslados usan la forma completa
// (DRAFT -> WAITING -> READY -> DONE | CANCELLED); los ajustes solo DRAFT -> DONE.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "DRAFT"
	StatusWaiting   DocumentStatus = "WAITING"
	StatusReady     DocumentStatus = "READY"
	StatusDone      DocumentStatus = "DONE"
	StatusCancelled DocumentStatus = "CANCELLED"
)

// transitions tabla cerrada de transiciones permitidas.
// READY -> DONE solo la ejecuta el motor de validación; los endpoints de
// edición de estado deben rechazar DONE como destino.
var transitions = map[DocumentStatus][]DocumentStatus{
	StatusDraft:   {StatusWaiting, StatusReady, StatusCancelled},
	StatusWaiting: {StatusReady, StatusCancelled},
	StatusReady:   {StatusDone, StatusCancelled},
	// DONE y CANCELLED son terminales
}

// Valid indica si el valor es uno de los estados conocidos.
func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusWaiting, StatusReady, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// Terminal indica si el estado no admite más transiciones ni mutación de líneas.
func (s DocumentStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// CanTransition indica si la transición s -> to está en la tabla.
func (s DocumentStatus) CanTransition(to DocumentStatus) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// Transition valida s -> to y devuelve el estado destino.
// Devuelve ErrInvalidStatusTransition si la transición no está permitida.
func (s DocumentStatus) Transition(to DocumentStatus) (DocumentStatus, error) {
	if !to.Valid() || !s.CanTransition(to) {
		return s, domain.ErrInvalidStatusTransition
	}
	return to, nil
}

// AllowsLineEdits indica si el documento admite agregar líneas en este estado.
func (s DocumentStatus) AllowsLineEdits() bool {
	return s == StatusDraft || s == StatusWaiting
}

// AllowsQuantityEdits indica si se pueden editar cantidades recibidas/entregadas.
func (s DocumentStatus) AllowsQuantityEdits() bool {
	return s == StatusDraft || s == StatusWaiting || s == StatusReady
}
