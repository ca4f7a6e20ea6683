package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestione-fascicoli/internal/application/auth"
	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/internal/application/validation"
	"github.com/jhoicas/gestione-fascicoli/internal/domain"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsers struct {
	created []*entity.User
	err     error
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUsers) GetByEmail(context.Context, string) (*entity.User, error) { return nil, nil }

type fakeProvider struct {
	session *dto.Session
	err     error
}

func (p fakeProvider) SignIn(context.Context, map[string]string) (*dto.Session, error) {
	return p.session, p.err
}

func newUC(users *fakeUsers, provider fakeProvider, matchPasswords bool) *auth.AuthUseCase {
	return auth.NewAuthUseCase(users, validation.New(validation.WithPasswordMatch(matchPasswords)), provider, logger.Nop(),
		auth.Config{BcryptCost: bcrypt.MinCost})
}

func registerForm(pwd, confirm string) map[string]any {
	return map[string]any{"name": "Mario", "email": "mario@example.com", "password": pwd, "confirmPassword": confirm}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_GuardaHashYRedirige(t *testing.T) {
	users := &fakeUsers{}
	uc := newUC(users, fakeProvider{}, true)

	res := uc.RegisterUser(context.Background(), registerForm("segreta1", "segreta1"))

	require.False(t, res.Failed())
	assert.Equal(t, auth.PathLogin, res.Redirect)
	require.Len(t, users.created, 1)
	u := users.created[0]
	assert.NotEqual(t, "segreta1", u.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("segreta1")))
}

func TestRegisterUser_PasswordsDistintos(t *testing.T) {
	users := &fakeUsers{}
	uc := newUC(users, fakeProvider{}, true)

	res := uc.RegisterUser(context.Background(), registerForm("segreta1", "altra"))

	require.True(t, res.Failed())
	assert.Equal(t, []string{"Le password non coincidono."}, res.State.Errors["confirmPassword"])
	assert.Empty(t, users.created)
}

func TestRegisterUser_SinComprobacionDePassword(t *testing.T) {
	users := &fakeUsers{}
	uc := newUC(users, fakeProvider{}, false)

	res := uc.RegisterUser(context.Background(), registerForm("segreta1", "altra"))

	assert.False(t, res.Failed())
	assert.Len(t, users.created, 1)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := newUC(&fakeUsers{err: &domain.ConflictError{Field: "email", Constraint: "users_email_key"}}, fakeProvider{}, true)

	res := uc.RegisterUser(context.Background(), registerForm("segreta1", "segreta1"))

	require.True(t, res.Failed())
	assert.Equal(t, []string{"Email già registrata."}, res.State.Errors["email"])
	assert.Equal(t, "Impossibile completare la registrazione.", res.State.Message)
}

func TestRegisterUser_ErrorDeBaseDeDatos(t *testing.T) {
	uc := newUC(&fakeUsers{err: errors.New("db down")}, fakeProvider{}, true)

	res := uc.RegisterUser(context.Background(), registerForm("segreta1", "segreta1"))

	require.True(t, res.Failed())
	assert.Equal(t, "Database Error: Impossibile registrare l'utente.", res.State.Message)
	assert.Empty(t, res.State.Errors)
}

func TestRegisterUser_CamposAusentes(t *testing.T) {
	uc := newUC(&fakeUsers{}, fakeProvider{}, true)

	res := uc.RegisterUser(context.Background(), map[string]any{})

	require.True(t, res.Failed())
	assert.Equal(t, "Campi mancanti.", res.State.Message)
	assert.Len(t, res.State.Errors, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_OK(t *testing.T) {
	session := &dto.Session{Token: "tok", UserID: "u1"}
	uc := newUC(&fakeUsers{}, fakeProvider{session: session}, true)

	msg, s, err := uc.Authenticate(context.Background(), map[string]string{"email": "a", "password": "b"})
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.Same(t, session, s)
}

func TestAuthenticate_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"credenciales", &domain.AuthError{Type: domain.AuthErrorCredentialsSignin}, auth.MsgInvalidCredentials},
		{"configuración", &domain.AuthError{Type: domain.AuthErrorConfiguration}, auth.MsgSomethingWrong},
		{"otro tipo", &domain.AuthError{Type: "AccessDenied"}, auth.MsgSomethingWrong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newUC(&fakeUsers{}, fakeProvider{err: tc.err}, true)

			msg, s, err := uc.Authenticate(context.Background(), nil)
			require.NoError(t, err)
			assert.Nil(t, s)
			assert.Equal(t, tc.want, msg)
		})
	}
}

func TestAuthenticate_ErrorDesconocidoSePropaga(t *testing.T) {
	boom := errors.New("network unreachable")
	uc := newUC(&fakeUsers{}, fakeProvider{err: boom}, true)

	_, _, err := uc.Authenticate(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}
