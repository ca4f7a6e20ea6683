package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "name, email"
// @Success      303   {object}  dto.MutationResult
// @Failure      422   {object}  dto.FormState
// @Failure      500   {object}  dto.FormState
// @Router       /dashboard/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	fields, err := readFields(c)
	if err != nil {
		return invalidBody(c)
	}
	return writeMutation(c, h.uc.Create(c.UserContext(), fields))
}

// List GET /dashboard/customers?query=&page=
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	query := c.Query("query")
	page := currentPage(c)
	items, err := h.uc.ListFiltered(c.UserContext(), query, page)
	if err != nil {
		return writeReadError(c, err)
	}
	pages, err := h.uc.CountPages(c.UserContext(), query)
	if err != nil {
		return writeReadError(c, err)
	}
	return c.JSON(dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page, TotalPages: pages},
	})
}

// Options GET /dashboard/customers/options
// Todos los clientes (id, nombre) para el selector del formulario de fascicolo.
func (h *CustomerHandler) Options(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return writeReadError(c, err)
	}
	return c.JSON(list)
}
