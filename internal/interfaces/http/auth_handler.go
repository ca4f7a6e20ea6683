package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-fascicoli/internal/application/auth"
	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth. log puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, confirmPassword"
// @Success      303   {object}  dto.MutationResult
// @Failure      409   {object}  dto.FormState
// @Failure      422   {object}  dto.FormState
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	fields, err := readFields(c)
	if err != nil {
		return invalidBody(c)
	}
	return writeMutation(c, h.uc.RegisterUser(c.UserContext(), fields))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.LoginResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	fields, err := readFields(c)
	if err != nil {
		return invalidBody(c)
	}
	credentials := make(map[string]string, len(fields))
	for k, v := range fields {
		switch x := v.(type) {
		case string:
			credentials[k] = x
		case []string:
			if len(x) > 0 {
				credentials[k] = x[0]
			}
		}
	}
	msg, session, err := h.uc.Authenticate(c.UserContext(), credentials)
	if err != nil {
		// La causa queda en el log; al cliente solo llega el código genérico.
		h.log.Error().Err(err).Str("path", c.Path()).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if msg != "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.LoginResponse{Message: msg})
	}
	return c.JSON(dto.LoginResponse{Session: session})
}
