// Package usecase contiene las lecturas paginadas y las mutaciones de clientes y fascicoli.
package usecase

import (
	"errors"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/internal/application/ports"
	"github.com/jhoicas/gestione-fascicoli/internal/domain"
	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

// Rutas de las vistas materializadas. Son también el destino de la navegación tras una mutación.
const (
	PathDashboard = "/dashboard/summary"
	PathCustomers = "/dashboard/customers"
	PathFascicoli = "/dashboard/fascicoli"
)

// Resultados de mutación registrados en métricas.
const (
	OutcomeOK         = dto.OutcomeOK
	OutcomeValidation = dto.OutcomeValidation
	OutcomeConflict   = dto.OutcomeConflict
	OutcomeError      = dto.OutcomeError
)

// offset calcula el desplazamiento de la página (las páginas empiezan en 1).
func offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * dto.PageSize
}

// TotalPages devuelve ceil(count / PageSize).
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + dto.PageSize - 1) / dto.PageSize
}

// dataAccessError registra la causa y devuelve el error genérico de cara al usuario.
func dataAccessError(log *logger.Logger, op, msg string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("error de base de datos")
	return &domain.DataAccessError{Message: msg, Err: err}
}

// mutationBase reúne lo que comparten las mutaciones: invalidación, métricas y log.
type mutationBase struct {
	cache   ports.ViewCache
	metrics ports.MutationRecorder
	log     *logger.Logger
}

func newMutationBase(cache ports.ViewCache, metrics ports.MutationRecorder, log *logger.Logger) mutationBase {
	if metrics == nil {
		metrics = ports.NopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return mutationBase{cache: cache, metrics: metrics, log: log}
}

// fail registra el resultado y devuelve el FormState.
func (b mutationBase) fail(op, outcome string, st *dto.FormState) dto.MutationResult {
	b.metrics.ObserveMutation(op, outcome)
	return dto.MutationResult{State: st, Outcome: outcome}
}

// persistFailure clasifica un error de escritura: conflicto de unicidad en un campo conocido
// o fallo genérico sin atribución.
func (b mutationBase) persistFailure(op string, err error, conflicts map[string]*dto.FormState, generic string) dto.MutationResult {
	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		if st, ok := conflicts[ce.Field]; ok {
			b.log.Warn().Str("op", op).Str("field", ce.Field).Str("constraint", ce.Constraint).Msg("violación de unicidad")
			return b.fail(op, OutcomeConflict, st)
		}
	}
	b.log.Error().Err(err).Str("op", op).Msg("error de base de datos")
	return b.fail(op, OutcomeError, &dto.FormState{Message: generic})
}

// succeed invalida las vistas afectadas y devuelve la navegación al listado.
func (b mutationBase) succeed(op, redirect string, invalidate ...string) dto.MutationResult {
	for _, p := range invalidate {
		b.cache.Invalidate(p)
	}
	b.metrics.ObserveMutation(op, OutcomeOK)
	return dto.MutationResult{Redirect: redirect, Outcome: OutcomeOK}
}
