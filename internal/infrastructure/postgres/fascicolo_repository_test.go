package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestione-fascicoli/internal/domain"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
)

const testFascicoloID = "7b0c2f5e-3d7a-4c8e-9a52-1f0b6f6b1a01"

func newFascicoloRepoWithMock(t *testing.T) (*FascicoloRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewFascicoloRepository(mock), mock
}

func TestFascicoloRepo_Create_OK(t *testing.T) {
	repo, mock := newFascicoloRepoWithMock(t)
	date := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO fascicoli \(id, customer_id, type, number, date\)`).
		WithArgs(testFascicoloID, "c1", "civile", 42, date).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &entity.Fascicolo{
		ID: testFascicoloID, CustomerID: "c1", Type: "civile", Number: 42, Date: date,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Una violación de unicidad se traduce a ConflictError sobre el campo number.
func TestFascicoloRepo_Create_NumeroDuplicado(t *testing.T) {
	repo, mock := newFascicoloRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO fascicoli`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "fascicoli_number_key"})

	err := repo.Create(context.Background(), &entity.Fascicolo{ID: testFascicoloID, Number: 42})

	var ce *domain.ConflictError
	require.True(t, errors.As(err, &ce), "se esperaba ConflictError, got %v", err)
	assert.Equal(t, "number", ce.Field)
	assert.Equal(t, "fascicoli_number_key", ce.Constraint)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFascicoloRepo_Create_ErrorGenerico(t *testing.T) {
	repo, mock := newFascicoloRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO fascicoli`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &entity.Fascicolo{ID: testFascicoloID})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "insert fascicolo")
}

func TestFascicoloRepo_Update_NumeroDuplicado(t *testing.T) {
	repo, mock := newFascicoloRepoWithMock(t)

	mock.ExpectExec(`UPDATE fascicoli\s+SET customer_id = \$2, type = \$3, number = \$4\s+WHERE id = \$1`).
		WithArgs(testFascicoloID, "c1", "civile", 7).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "fascicoli_number_key"})

	err := repo.Update(context.Background(), &entity.Fascicolo{ID: testFascicoloID, CustomerID: "c1", Type: "civile", Number: 7})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFascicoloRepo_ListFiltered(t *testing.T) {
	repo, mock := newFascicoloRepoWithMock(t)
	date := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "customer_id", "type", "number", "date", "name", "email", "image_url"}).
		AddRow(testFascicoloID, "c1", "civile", 42, date, "Mario Rossi", "mario@example.com", "/customers/evil-rabbit.png")
	mock.ExpectQuery(`(?s)FROM fascicoli\s+JOIN customers ON fascicoli.customer_id = customers.id.*fascicoli.number::text ILIKE \$1.*ORDER BY fascicoli.date DESC\s+LIMIT \$2 OFFSET \$3`).
		WithArgs("%civ%", 6, 12).
		WillReturnRows(rows)

	list, err := repo.ListFiltered(context.Background(), "civ", 6, 12)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 42, list[0].Number)
	assert.Equal(t, "Mario Rossi", list[0].CustomerName)
	assert.Equal(t, date, list[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFascicoloRepo_CountFiltered(t *testing.T) {
	repo, mock := newFascicoloRepoWithMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM fascicoli\s+JOIN customers`).
		WithArgs(`%50\%%`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(13))

	n, err := repo.CountFiltered(context.Background(), "50%")
	require.NoError(t, err)
	assert.Equal(t, 13, n)
}

func TestFascicoloRepo_GetFormByID_NoExiste(t *testing.T) {
	repo, mock := newFascicoloRepoWithMock(t)

	mock.ExpectQuery(`SELECT fascicoli.id, fascicoli.customer_id, fascicoli.type, fascicoli.number`).
		WithArgs(testFascicoloID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "customer_id", "type", "number"}))

	f, err := repo.GetFormByID(context.Background(), testFascicoloID)
	require.NoError(t, err)
	assert.Nil(t, f)
}

// Un id que no es UUID no llega a la base de datos.
func TestFascicoloRepo_GetFormByID_IDInvalido(t *testing.T) {
	repo, mock := newFascicoloRepoWithMock(t)

	f, err := repo.GetFormByID(context.Background(), "non-un-uuid")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFascicoloRepo_Delete(t *testing.T) {
	repo, mock := newFascicoloRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM fascicoli WHERE id = \$1`).
		WithArgs(testFascicoloID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), testFascicoloID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
