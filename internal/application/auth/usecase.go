package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/internal/application/ports"
	"github.com/jhoicas/gestione-fascicoli/internal/application/validation"
	"github.com/jhoicas/gestione-fascicoli/internal/domain"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/repository"
	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

// PathLogin destino de la navegación tras un registro correcto.
const PathLogin = "/login"

// Mensajes fijos del login.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWrong     = "Something went wrong."
)

const (
	msgRegisterInvalid = "Campi mancanti."
	msgRegisterDB      = "Database Error: Impossibile registrare l'utente."
	msgEmailTakenField = "Email già registrata."
	msgEmailTaken      = "Impossibile completare la registrazione."
	opRegister         = "users.register"
	outcomeOK          = dto.OutcomeOK
	outcomeValidation  = dto.OutcomeValidation
	outcomeConflict    = dto.OutcomeConflict
	outcomeError       = dto.OutcomeError
)

// Config parámetros del caso de uso de auth.
type Config struct {
	BcryptCost int // 0 = bcrypt.DefaultCost
	Metrics    ports.MutationRecorder
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	validator *validation.Validator
	provider  ports.IdentityProvider
	cost      int
	metrics   ports.MutationRecorder
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	validator *validation.Validator,
	provider ports.IdentityProvider,
	log *logger.Logger,
	cfg Config,
) *AuthUseCase {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = ports.NopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		userRepo:  userRepo,
		validator: validator,
		provider:  provider,
		cost:      cost,
		metrics:   metrics,
		log:       log,
	}
}

// RegisterUser valida, hashea el password con bcrypt y persiste. El hash y el INSERT
// terminan antes de devolver, así que el resultado refleja siempre el estado real.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, raw map[string]any) dto.MutationResult {
	in, errs := uc.validator.Register(raw)
	if errs != nil {
		return uc.fail(outcomeValidation, errs.State(msgRegisterInvalid))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		uc.log.Error().Err(err).Str("op", opRegister).Msg("hash del password")
		return uc.fail(outcomeError, &dto.FormState{Message: msgRegisterDB})
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		var ce *domain.ConflictError
		if errors.As(err, &ce) && ce.Field == "email" {
			return uc.fail(outcomeConflict, &dto.FormState{
				Errors:  map[string][]string{"email": {msgEmailTakenField}},
				Message: msgEmailTaken,
			})
		}
		uc.log.Error().Err(err).Str("op", opRegister).Msg("error de base de datos")
		return uc.fail(outcomeError, &dto.FormState{Message: msgRegisterDB})
	}
	uc.log.Info().Str("op", opRegister).Str("user_id", user.ID).Msg("usuario registrado")
	uc.metrics.ObserveMutation(opRegister, outcomeOK)
	return dto.MutationResult{Redirect: PathLogin, Outcome: outcomeOK}
}

func (uc *AuthUseCase) fail(outcome string, st *dto.FormState) dto.MutationResult {
	uc.metrics.ObserveMutation(opRegister, outcome)
	return dto.MutationResult{State: st, Outcome: outcome}
}

// Authenticate reenvía las credenciales al proveedor de identidad.
// Devuelve un mensaje de cara al usuario para los fallos reconocidos (*domain.AuthError);
// cualquier otro error se propaga sin tocar.
func (uc *AuthUseCase) Authenticate(ctx context.Context, credentials map[string]string) (string, *dto.Session, error) {
	session, err := uc.provider.SignIn(ctx, credentials)
	if err == nil {
		return "", session, nil
	}
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		return "", nil, err
	}
	switch authErr.Type {
	case domain.AuthErrorCredentialsSignin:
		return MsgInvalidCredentials, nil, nil
	default:
		uc.log.Warn().Err(err).Str("type", authErr.Type).Msg("fallo del proveedor de identidad")
		return MsgSomethingWrong, nil, nil
	}
}
