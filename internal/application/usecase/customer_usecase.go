package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/internal/application/ports"
	"github.com/jhoicas/gestione-fascicoli/internal/application/validation"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/repository"
	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

const (
	msgCreateCustomerInvalid = "Campi mancanti. Impossibile creare il cliente."
	msgCreateCustomerDB      = "Database Error: Impossibile creare il cliente."
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	mutationBase
	repo      repository.CustomerRepository
	validator *validation.Validator
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	repo repository.CustomerRepository,
	validator *validation.Validator,
	cache ports.ViewCache,
	metrics ports.MutationRecorder,
	log *logger.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		mutationBase: newMutationBase(cache, metrics, log),
		repo:         repo,
		validator:    validator,
	}
}

// ListAll devuelve todos los clientes (id, nombre) ordenados por nombre, sin paginar.
func (uc *CustomerUseCase) ListAll(ctx context.Context) ([]dto.CustomerOption, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, dataAccessError(uc.log, "customers.list_all", "Impossibile recuperare l'elenco dei clienti.", err)
	}
	out := make([]dto.CustomerOption, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerOption{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// ListFiltered devuelve la página de clientes cuyo nombre o email contienen query,
// con el número de fascicoli de cada uno.
func (uc *CustomerUseCase) ListFiltered(ctx context.Context, query string, page int) ([]dto.CustomerSummaryResponse, error) {
	list, err := uc.repo.ListFiltered(ctx, query, dto.PageSize, offset(page))
	if err != nil {
		return nil, dataAccessError(uc.log, "customers.list", "Impossibile recuperare la tabella dei clienti.", err)
	}
	out := make([]dto.CustomerSummaryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerSummaryResponse{
			ID:             c.ID,
			Name:           c.Name,
			Email:          c.Email,
			ImageURL:       c.ImageURL,
			TotalFascicoli: c.TotalFascicoli,
		})
	}
	return out, nil
}

// CountPages devuelve el número de páginas del listado filtrado.
func (uc *CustomerUseCase) CountPages(ctx context.Context, query string) (int, error) {
	n, err := uc.repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, dataAccessError(uc.log, "customers.count", "Impossibile calcolare il numero totale di clienti.", err)
	}
	return TotalPages(n), nil
}

// Create valida y persiste un cliente con la imagen por defecto.
func (uc *CustomerUseCase) Create(ctx context.Context, raw map[string]any) dto.MutationResult {
	const op = "customers.create"
	in, errs := uc.validator.Customer(raw)
	if errs != nil {
		return uc.fail(op, OutcomeValidation, errs.State(msgCreateCustomerInvalid))
	}
	customer := &entity.Customer{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Email:    in.Email,
		ImageURL: entity.DefaultCustomerImage,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return uc.persistFailure(op, err, nil, msgCreateCustomerDB)
	}
	return uc.succeed(op, PathCustomers, PathCustomers, PathDashboard)
}
