package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
)

// FascicoloRow fila del listado de fascicoli unida con los datos del cliente.
type FascicoloRow struct {
	ID            string
	CustomerID    string
	Type          string
	Number        int
	Date          time.Time
	CustomerName  string
	CustomerEmail string
	ImageURL      string
}

// FascicoloForm datos editables de un fascicolo.
type FascicoloForm struct {
	ID         string
	CustomerID string
	Type       string
	Number     int
}

// FascicoloRepository define el puerto de persistencia para Fascicolo.
// Create y Update devuelven *domain.ConflictError si Number ya existe.
type FascicoloRepository interface {
	Create(ctx context.Context, f *entity.Fascicolo) error
	Update(ctx context.Context, f *entity.Fascicolo) error
	Delete(ctx context.Context, id string) error
	GetFormByID(ctx context.Context, id string) (*FascicoloForm, error)
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]FascicoloRow, error)
	CountFiltered(ctx context.Context, query string) (int, error)
	Count(ctx context.Context) (int, error)
}
