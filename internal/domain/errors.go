package domain

import (
	"errors"
	"fmt"
)

// ErrorKind categorises why a route query failed.
type ErrorKind string

const (
	KindInvalidInput       ErrorKind = "invalid_input"
	KindNotFound           ErrorKind = "not_found"
	KindServerError        ErrorKind = "server_error"
	KindNetworkUnreachable ErrorKind = "network_unreachable"
	KindUnknown            ErrorKind = "unknown"
)

const (
	msgInvalidInput = "Por favor ingresa tanto el origen como el destino"
	msgBase         = "Error: No se pudo obtener la información de la ruta."
)

// ResolutionError is the failure half of a route resolution.
// Err holds the last candidate's underlying error, when there was one.
type ResolutionError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Is matches any *ResolutionError of the same Kind, so the Err* sentinels
// below work with errors.Is.
func (e *ResolutionError) Is(target error) bool {
	t, ok := target.(*ResolutionError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

var (
	ErrInvalidInput       = &ResolutionError{Kind: KindInvalidInput, Message: msgInvalidInput}
	ErrNotFound           = &ResolutionError{Kind: KindNotFound}
	ErrServerError        = &ResolutionError{Kind: KindServerError}
	ErrNetworkUnreachable = &ResolutionError{Kind: KindNetworkUnreachable}
	ErrUnknown            = &ResolutionError{Kind: KindUnknown}
)

// Build a ResolutionError whose Message is derived from kind.
func NewResolutionError(kind ErrorKind, err error) *ResolutionError {
	return &ResolutionError{Kind: kind, Message: MessageFor(kind, err), Err: err}
}

// Return the human-readable message shown to users for a failure of the given kind.
func MessageFor(kind ErrorKind, err error) string {
	switch kind {
	case KindInvalidInput:
		return msgInvalidInput
	case KindNotFound:
		return msgBase + " Endpoint no encontrado."
	case KindServerError:
		return msgBase + " Error interno del servidor."
	case KindNetworkUnreachable:
		return msgBase + " Problema de conectividad con el servicio de rutas."
	default:
		if err == nil {
			return msgBase
		}
		return fmt.Sprintf("%s (%v)", msgBase, err)
	}
}

// KindOf returns the ErrorKind carried by err, or KindUnknown when err is not
// a ResolutionError. A nil error has no kind.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var re *ResolutionError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}
