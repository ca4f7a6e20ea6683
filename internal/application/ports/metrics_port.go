package ports

// MutationRecorder registra el resultado de cada mutación (ok, validation, conflict, error).
type MutationRecorder interface {
	ObserveMutation(operation, outcome string)
}

// NopRecorder descarta las observaciones.
type NopRecorder struct{}

func (NopRecorder) ObserveMutation(string, string) {}
