package domain

import (
	"errors"
	"fmt"
)

// ErrConflict se cumple para todo *ConflictError (errors.Is).
var ErrConflict = errors.New("conflicto con el estado actual")

// ConflictError indica que una escritura violaría una restricción de unicidad.
// Lo produce la capa de almacenamiento; Field es el campo del formulario afectado.
type ConflictError struct {
	Field      string
	Constraint string
	Err        error
}

func (e *ConflictError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("conflicto en %s (%s)", e.Field, e.Constraint)
	}
	return "conflicto en " + e.Field
}

func (e *ConflictError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrConflict).
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// DataAccessError fallo genérico de lectura o escritura. Error() devuelve solo el mensaje
// de cara al usuario; la causa del driver queda accesible vía Unwrap para el log.
type DataAccessError struct {
	Message string
	Err     error
}

func (e *DataAccessError) Error() string { return e.Message }

func (e *DataAccessError) Unwrap() error { return e.Err }

// AuthError señal de fallo emitida por el proveedor de identidad.
type AuthError struct {
	Type string
	Err  error
}

// Tipos de AuthError conocidos.
const (
	AuthErrorCredentialsSignin = "CredentialsSignin"
	AuthErrorConfiguration     = "Configuration"
)

func (e *AuthError) Error() string {
	if e.Err != nil {
		return "auth: " + e.Type + ": " + e.Err.Error()
	}
	return "auth: " + e.Type
}

func (e *AuthError) Unwrap() error { return e.Err }
