package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/internal/domain"
)

// readFields devuelve los campos del cuerpo (JSON, urlencoded o multipart) sin tipar.
// Los números JSON llegan como json.Number.
func readFields(c *fiber.Ctx) (map[string]any, error) {
	fields := map[string]any{}
	switch {
	case c.Is("json"):
		body := bytes.TrimSpace(c.Body())
		if len(body) == 0 {
			return fields, nil
		}
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil {
			return nil, err
		}
	case strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for k, v := range form.Value {
			fields[k] = v
		}
	default:
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			fields[string(k)] = string(v)
		})
	}
	return fields, nil
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// writeMutation traduce el resultado de una mutación a HTTP: 303 + Location en éxito,
// FormState con 422 (validación), 409 (conflicto) o 500 (base de datos) en fallo.
func writeMutation(c *fiber.Ctx, res dto.MutationResult) error {
	if !res.Failed() {
		c.Location(res.Redirect)
		return c.Status(fiber.StatusSeeOther).JSON(res)
	}
	status := fiber.StatusInternalServerError
	switch res.Outcome {
	case dto.OutcomeValidation:
		status = fiber.StatusUnprocessableEntity
	case dto.OutcomeConflict:
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(res.State)
}

// writeReadError responde 500 con el mensaje genérico de DataAccessError.
func writeReadError(c *fiber.Ctx, err error) error {
	var dae *domain.DataAccessError
	if errors.As(err, &dae) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATA_ACCESS", Message: dae.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func currentPage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}
