package repository

import (
	"context"

	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve *domain.ConflictError{Field: "email"} si el email ya está registrado.
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail devuelve nil, nil si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
