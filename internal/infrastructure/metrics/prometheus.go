package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder expone contadores de mutaciones y de la caché de vistas en un registro propio.
// Implementa ports.MutationRecorder y cache.EventRecorder.
type Recorder struct {
	registry    *prometheus.Registry
	mutations   *prometheus.CounterVec
	cacheEvents *prometheus.CounterVec
}

// New crea el registro con los colectores de proceso y de runtime de Go.
func New(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Mutaciones procesadas por operación y resultado.",
		}, []string{"operation", "outcome"}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_cache_events_total",
			Help:      "Eventos de la caché de vistas (hit, miss, invalidate).",
		}, []string{"event"}),
	}
	reg.MustRegister(
		r.mutations,
		r.cacheEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveMutation incrementa mutations_total{operation,outcome}.
func (r *Recorder) ObserveMutation(operation, outcome string) {
	r.mutations.WithLabelValues(operation, outcome).Inc()
}

// ObserveCacheEvent incrementa view_cache_events_total{event}.
func (r *Recorder) ObserveCacheEvent(event string) {
	r.cacheEvents.WithLabelValues(event).Inc()
}

// Handler sirve el registro en formato de exposición de Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry devuelve el registro interno.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
