package repository

import (
	"context"

	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
)

// CustomerField par id/nombre para poblar selectores.
type CustomerField struct {
	ID   string
	Name string
}

// CustomerSummary fila del listado de clientes con el número de fascicoli asociados.
type CustomerSummary struct {
	ID             string
	Name           string
	Email          string
	ImageURL       string
	TotalFascicoli int
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	ListAll(ctx context.Context) ([]CustomerField, error)
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]CustomerSummary, error)
	CountFiltered(ctx context.Context, query string) (int, error)
	Count(ctx context.Context) (int, error)
}
