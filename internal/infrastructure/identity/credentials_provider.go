package identity

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/internal/application/ports"
	"github.com/jhoicas/gestione-fascicoli/internal/domain"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/repository"
	"github.com/jhoicas/gestione-fascicoli/pkg/jwt"
)

var _ ports.IdentityProvider = (*CredentialsProvider)(nil)

// TokenConfig parámetros de firma del token de sesión.
type TokenConfig struct {
	Secret     string
	Issuer     string
	Expiration int // minutos
}

// CredentialsProvider verifica email/password contra la tabla users y emite un JWT.
type CredentialsProvider struct {
	users repository.UserRepository
	token TokenConfig
}

// NewCredentialsProvider construye el proveedor de credenciales.
func NewCredentialsProvider(users repository.UserRepository, token TokenConfig) *CredentialsProvider {
	return &CredentialsProvider{users: users, token: token}
}

// SignIn espera las claves "email" y "password".
// Email desconocido o password incorrecto: *domain.AuthError CredentialsSignin.
// Fallo al firmar el token: *domain.AuthError Configuration.
// Los errores del repositorio se devuelven tal cual.
func (p *CredentialsProvider) SignIn(ctx context.Context, credentials map[string]string) (*dto.Session, error) {
	email := strings.TrimSpace(credentials["email"])
	password := credentials["password"]
	if email == "" || password == "" {
		return nil, &domain.AuthError{Type: domain.AuthErrorCredentialsSignin}
	}

	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.AuthError{Type: domain.AuthErrorCredentialsSignin}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, &domain.AuthError{Type: domain.AuthErrorCredentialsSignin}
		}
		return nil, &domain.AuthError{Type: domain.AuthErrorConfiguration, Err: err}
	}

	token, err := jwt.Generate(p.token.Secret, user.ID, user.Email, p.token.Issuer, p.token.Expiration)
	if err != nil {
		return nil, &domain.AuthError{Type: domain.AuthErrorConfiguration, Err: err}
	}
	return &dto.Session{Token: token, UserID: user.ID, Email: user.Email}, nil
}
