package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-fascicoli/internal/infrastructure/cache"
)

// HeaderViewCache indica si la respuesta salió de la caché de vistas (HIT) o se calculó (MISS).
const HeaderViewCache = "X-View-Cache"

// ViewCacheMiddleware sirve las vistas GET desde la caché y guarda las respuestas 200.
// La clave es path + query cruda; las mutaciones la invalidan por path.
// Una respuesta calculada mientras corría una invalidación no se guarda.
func ViewCacheMiddleware(views *cache.ViewCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if views == nil || c.Method() != fiber.MethodGet {
			return c.Next()
		}
		key := viewKey(c)
		if v, ok := views.Get(key); ok {
			c.Set(HeaderViewCache, "HIT")
			c.Set(fiber.HeaderContentType, v.ContentType)
			return c.Status(v.Status).Send(v.Body)
		}
		gen := views.Generation()
		if err := c.Next(); err != nil {
			return err
		}
		c.Set(HeaderViewCache, "MISS")
		resp := c.Response()
		if resp.StatusCode() == fiber.StatusOK {
			views.AddIfCurrent(key, cache.View{
				Status:      fiber.StatusOK,
				ContentType: string(resp.Header.ContentType()),
				Body:        append([]byte(nil), resp.Body()...),
			}, gen)
		}
		return nil
	}
}

// viewKey copia path y query: fasthttp reutiliza sus buffers entre peticiones.
func viewKey(c *fiber.Ctx) string {
	key := strings.Clone(c.Path())
	if q := c.Request().URI().QueryString(); len(q) > 0 {
		key += "?" + string(q)
	}
	return key
}
