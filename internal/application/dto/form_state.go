package dto

// FormState resultado de una mutación fallida: errores por campo más un mensaje general.
// La UI lo renderiza tal cual, sin transformarlo.
type FormState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// HasFieldErrors indica si el estado atribuye errores a algún campo.
func (s *FormState) HasFieldErrors() bool {
	return s != nil && len(s.Errors) > 0
}

// MutationResult salida de cada mutación: o bien State (fallo recuperable) o bien Redirect
// (éxito; el llamante debe navegar al listado indicado).
type MutationResult struct {
	State    *FormState `json:"state,omitempty"`
	Redirect string     `json:"redirect,omitempty"`
	Outcome  string     `json:"-"` // ok, validation, conflict, error
}

// Failed indica si la mutación terminó con un FormState.
func (r MutationResult) Failed() bool {
	return r.State != nil
}

// Resultados posibles de una mutación.
const (
	OutcomeOK         = "ok"
	OutcomeValidation = "validation"
	OutcomeConflict   = "conflict"
	OutcomeError      = "error"
)
