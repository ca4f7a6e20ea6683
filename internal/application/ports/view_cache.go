package ports

// ViewCache define el puerto de invalidación de vistas materializadas.
// Las mutaciones lo invocan tras persistir; nunca lo invocan las lecturas.
type ViewCache interface {
	// Invalidate marca como obsoletas la vista de path y las que cuelgan de ella
	// (path/..., path?...). La siguiente lectura las recalcula.
	Invalidate(path string)
}
