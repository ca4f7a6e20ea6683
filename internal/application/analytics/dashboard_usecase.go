// Package analytics contiene los casos de uso de las tarjetas del dashboard.
package analytics

import (
	"context"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/internal/domain"
	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

// Counter cuenta las filas de una tabla.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// DashboardUseCase genera los contadores del dashboard.
type DashboardUseCase struct {
	customers Counter
	fascicoli Counter
	log       *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(customers, fascicoli Counter, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{customers: customers, fascicoli: fascicoli, log: log}
}

// GetCounts cuenta clientes y fascicoli con dos consultas en paralelo.
func (uc *DashboardUseCase) GetCounts(ctx context.Context) (*dto.DashboardCountsDTO, error) {
	type countResult struct {
		n   int
		err error
	}

	customersCh := make(chan countResult, 1)
	fascicoliCh := make(chan countResult, 1)

	go func() {
		n, err := uc.customers.Count(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.fascicoli.Count(ctx)
		fascicoliCh <- countResult{n, err}
	}()

	customers := <-customersCh
	fascicoli := <-fascicoliCh

	for _, r := range []countResult{customers, fascicoli} {
		if r.err != nil {
			uc.log.Error().Err(r.err).Str("op", "dashboard.counts").Msg("error de base de datos")
			return nil, &domain.DataAccessError{Message: "Impossibile recuperare i dati del dashboard.", Err: r.err}
		}
	}

	return &dto.DashboardCountsDTO{
		CustomerCount:  customers.n,
		FascicoliCount: fascicoli.n,
	}, nil
}
