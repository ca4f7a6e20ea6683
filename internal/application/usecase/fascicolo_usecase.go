package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
	"github.com/jhoicas/gestione-fascicoli/internal/application/ports"
	"github.com/jhoicas/gestione-fascicoli/internal/application/validation"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/repository"
	"github.com/jhoicas/gestione-fascicoli/pkg/format"
	"github.com/jhoicas/gestione-fascicoli/pkg/logger"
)

// Mensajes de las mutaciones de fascicolo.
const (
	msgCreateFascicoloInvalid = "Impossibile creare il fascicolo. Riprovare."
	msgCreateFascicoloDB      = "Database Error: Impossibile creare il fascicolo."
	msgUpdateFascicoloInvalid = "Campi mancanti. Impossibile aggiornare il fascicolo."
	msgUpdateFascicoloDB      = "Database Error: Impossibile aggiornare il fascicolo."
	msgDuplicateNumberField   = "Numero di fascicolo già esistente"
	msgDuplicateNumber        = "Il numero del fascicolo è già esistente"
)

// FascicoloConfig parámetros del caso de uso de fascicoli.
type FascicoloConfig struct {
	DeleteEnabled bool             // FEATURE_DELETE_FASCICOLI
	Now           func() time.Time // reloj para la fecha de creación; nil = time.Now
	Metrics       ports.MutationRecorder
}

// FascicoloUseCase lecturas y mutaciones de fascicoli.
type FascicoloUseCase struct {
	mutationBase
	repo          repository.FascicoloRepository
	validator     *validation.Validator
	now           func() time.Time
	deleteEnabled bool
}

// NewFascicoloUseCase construye el caso de uso.
func NewFascicoloUseCase(
	repo repository.FascicoloRepository,
	validator *validation.Validator,
	cache ports.ViewCache,
	log *logger.Logger,
	cfg FascicoloConfig,
) *FascicoloUseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &FascicoloUseCase{
		mutationBase:  newMutationBase(cache, cfg.Metrics, log),
		repo:          repo,
		validator:     validator,
		now:           now,
		deleteEnabled: cfg.DeleteEnabled,
	}
}

// ListFiltered devuelve la página de fascicoli cuyo cliente (nombre, email), tipo, fecha
// o número contienen query. Orden: fecha descendente.
func (uc *FascicoloUseCase) ListFiltered(ctx context.Context, query string, page int) ([]dto.FascicoloRowResponse, error) {
	rows, err := uc.repo.ListFiltered(ctx, query, dto.PageSize, offset(page))
	if err != nil {
		return nil, dataAccessError(uc.log, "fascicoli.list", "Impossibile recuperare i fascicoli.", err)
	}
	out := make([]dto.FascicoloRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FascicoloRowResponse{
			ID:            r.ID,
			CustomerID:    r.CustomerID,
			Type:          r.Type,
			Number:        r.Number,
			Date:          r.Date.Format(format.ISODate),
			DateLabel:     format.DateTime(r.Date),
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			ImageURL:      r.ImageURL,
		})
	}
	return out, nil
}

// CountPages devuelve el número de páginas del listado filtrado.
func (uc *FascicoloUseCase) CountPages(ctx context.Context, query string) (int, error) {
	n, err := uc.repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, dataAccessError(uc.log, "fascicoli.count", "Impossibile calcolare il numero totale di fascicoli.", err)
	}
	return TotalPages(n), nil
}

// GetByID devuelve el formulario del fascicolo o nil si no existe.
func (uc *FascicoloUseCase) GetByID(ctx context.Context, id string) (*dto.FascicoloFormResponse, error) {
	f, err := uc.repo.GetFormByID(ctx, id)
	if err != nil {
		return nil, dataAccessError(uc.log, "fascicoli.get", "Impossibile recuperare il fascicolo.", err)
	}
	if f == nil {
		return nil, nil
	}
	return &dto.FascicoloFormResponse{ID: f.ID, CustomerID: f.CustomerID, Type: f.Type, Number: f.Number}, nil
}

func numberConflict() map[string]*dto.FormState {
	return map[string]*dto.FormState{
		"number": {
			Errors:  map[string][]string{"number": {msgDuplicateNumberField}},
			Message: msgDuplicateNumber,
		},
	}
}

// Create valida, persiste con la fecha del día y navega al listado.
func (uc *FascicoloUseCase) Create(ctx context.Context, raw map[string]any) dto.MutationResult {
	const op = "fascicoli.create"
	in, errs := uc.validator.Fascicolo(raw)
	if errs != nil {
		return uc.fail(op, OutcomeValidation, errs.State(msgCreateFascicoloInvalid))
	}
	now := uc.now().UTC()
	f := &entity.Fascicolo{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Type:       in.Type,
		Number:     in.Number,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return uc.persistFailure(op, err, numberConflict(), msgCreateFascicoloDB)
	}
	return uc.succeed(op, PathFascicoli, PathFascicoli, PathCustomers, PathDashboard)
}

// Update valida y actualiza cliente, tipo y número. La fecha no cambia.
func (uc *FascicoloUseCase) Update(ctx context.Context, id string, raw map[string]any) dto.MutationResult {
	const op = "fascicoli.update"
	in, errs := uc.validator.Fascicolo(raw)
	if errs != nil {
		return uc.fail(op, OutcomeValidation, errs.State(msgUpdateFascicoloInvalid))
	}
	f := &entity.Fascicolo{ID: id, CustomerID: in.CustomerID, Type: in.Type, Number: in.Number}
	if err := uc.repo.Update(ctx, f); err != nil {
		return uc.persistFailure(op, err, numberConflict(), msgUpdateFascicoloDB)
	}
	return uc.succeed(op, PathFascicoli, PathFascicoli, PathCustomers)
}

// Delete elimina el fascicolo solo si FEATURE_DELETE_FASCICOLI está activo.
// En ambos casos invalida el listado.
func (uc *FascicoloUseCase) Delete(ctx context.Context, id string) {
	const op = "fascicoli.delete"
	if !uc.deleteEnabled {
		uc.log.Info().Str("op", op).Str("id", id).Msg("eliminación de fascicoli deshabilitada, solo se invalida la caché")
		uc.succeed(op, "", PathFascicoli)
		return
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("op", op).Str("id", id).Msg("error de base de datos")
		uc.metrics.ObserveMutation(op, OutcomeError)
		uc.cache.Invalidate(PathFascicoli)
		return
	}
	uc.succeed(op, "", PathFascicoli, PathCustomers, PathDashboard)
}
