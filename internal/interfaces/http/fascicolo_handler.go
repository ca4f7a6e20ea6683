package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/internal/application/usecase"
)

// FascicoloHandler maneja las peticiones HTTP de fascicoli (protegido).
type FascicoloHandler struct {
	uc *usecase.FascicoloUseCase
}

// NewFascicoloHandler construye el handler.
func NewFascicoloHandler(uc *usecase.FascicoloUseCase) *FascicoloHandler {
	return &FascicoloHandler{uc: uc}
}

// List GET /dashboard/fascicoli?query=&page=
func (h *FascicoloHandler) List(c *fiber.Ctx) error {
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
	return c.JSON(dto.FascicoloListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page, TotalPages: pages},
	})
}

// GetByID GET /dashboard/fascicoli/:id
func (h *FascicoloHandler) GetByID(c *fiber.Ctx) error {
	f, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeReadError(c, err)
	}
	if f == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fascicolo no encontrado"})
	}
	return c.JSON(f)
}

// Create godoc
// @Summary      Crear fascicolo
// @Tags         fascicoli
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.FascicoloRequest  true  "customerId, type, number"
// @Success      303   {object}  dto.MutationResult
// @Failure      409   {object}  dto.FormState
// @Failure      422   {object}  dto.FormState
// @Failure      500   {object}  dto.FormState
// @Router       /dashboard/fascicoli [post]
func (h *FascicoloHandler) Create(c *fiber.Ctx) error {
	fields, err := readFields(c)
	if err != nil {
		return invalidBody(c)
	}
	return writeMutation(c, h.uc.Create(c.UserContext(), fields))
}

// Update PUT /dashboard/fascicoli/:id
func (h *FascicoloHandler) Update(c *fiber.Ctx) error {
	fields, err := readFields(c)
	if err != nil {
		return invalidBody(c)
	}
	return writeMutation(c, h.uc.Update(c.UserContext(), c.Params("id"), fields))
}

// Delete DELETE /dashboard/fascicoli/:id
// Siempre 204: los fallos de almacenamiento se registran, no se devuelven.
func (h *FascicoloHandler) Delete(c *fiber.Ctx) error {
	h.uc.Delete(c.UserContext(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
