package ports

import (
	"context"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
)

// IdentityProvider define el puerto hacia el proveedor externo de verificación de credenciales.
// Los fallos reconocidos se señalan con *domain.AuthError; cualquier otro error es un fallo
// de infraestructura.
type IdentityProvider interface {
	SignIn(ctx context.Context, credentials map[string]string) (*dto.Session, error)
}
