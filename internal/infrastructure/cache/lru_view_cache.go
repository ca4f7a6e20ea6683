package cache

import (
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jhoicas/gestione-fascicoli/internal/application/ports"
)

// Eventos reportados a EventRecorder.
const (
	EventHit        = "hit"
	EventMiss       = "miss"
	EventInvalidate = "invalidate"
)

var _ ports.ViewCache = (*ViewCache)(nil)

// View respuesta GET materializada.
type View struct {
	Status      int
	ContentType string
	Body        []byte
}

// EventRecorder recibe los eventos de la caché (hit, miss, invalidate).
type EventRecorder interface {
	ObserveCacheEvent(event string)
}

type nopEvents struct{}

func (nopEvents) ObserveCacheEvent(string) {}

// ViewCache caché LRU de vistas, indexada por path + query. Segura para uso concurrente.
//
// gen cuenta las invalidaciones: una vista calculada antes de una invalidación
// no se guarda después de ella (ver AddIfCurrent).
type ViewCache struct {
	mu     sync.Mutex
	gen    uint64
	views  *lru.Cache[string, View]
	events EventRecorder
}

// NewViewCache crea la caché con capacidad size. events puede ser nil.
func NewViewCache(size int, events EventRecorder) (*ViewCache, error) {
	views, err := lru.New[string, View](size)
	if err != nil {
		return nil, fmt.Errorf("view cache: %w", err)
	}
	if events == nil {
		events = nopEvents{}
	}
	return &ViewCache{views: views, events: events}, nil
}

// Get devuelve la vista guardada bajo key.
func (c *ViewCache) Get(key string) (View, bool) {
	v, ok := c.views.Get(key)
	if ok {
		c.events.ObserveCacheEvent(EventHit)
	} else {
		c.events.ObserveCacheEvent(EventMiss)
	}
	return v, ok
}

// Add guarda la vista bajo key.
func (c *ViewCache) Add(key string, v View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views.Add(key, v)
}

// Generation devuelve la generación actual. Se captura antes de calcular una vista.
func (c *ViewCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// AddIfCurrent guarda la vista solo si no hubo invalidaciones desde gen.
// Devuelve false si la vista quedó obsoleta y se descartó.
func (c *ViewCache) AddIfCurrent(key string, v View, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.views.Add(key, v)
	return true
}

// Invalidate elimina la vista de path y todas las que cuelgan de ella
// (path/... y path?...). No toca vistas que solo comparten prefijo textual.
func (c *ViewCache) Invalidate(path string) {
	path = strings.TrimSuffix(path, "/")
	c.mu.Lock()
	c.gen++
	for _, key := range c.views.Keys() {
		if covers(path, key) {
			c.views.Remove(key)
		}
	}
	c.mu.Unlock()
	c.events.ObserveCacheEvent(EventInvalidate)
}

// Len número de vistas guardadas.
func (c *ViewCache) Len() int {
	return c.views.Len()
}

func covers(path, key string) bool {
	if !strings.HasPrefix(key, path) {
		return false
	}
	rest := key[len(path):]
	return rest == "" || rest[0] == '/' || rest[0] == '?'
}
