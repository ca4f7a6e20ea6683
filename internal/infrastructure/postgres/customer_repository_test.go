package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
)

func newCustomerRepoWithMock(t *testing.T) (*CustomerRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewCustomerRepository(mock), mock
}

func TestCustomerRepo_Create(t *testing.T) {
	repo, mock := newCustomerRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO customers \(id, name, email, image_url\)`).
		WithArgs("id-1", "Mario Rossi", "mario@example.com", entity.DefaultCustomerImage).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &entity.Customer{
		ID: "id-1", Name: "Mario Rossi", Email: "mario@example.com", ImageURL: entity.DefaultCustomerImage,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepo_ListAll_OrdenadoPorNombre(t *testing.T) {
	repo, mock := newCustomerRepoWithMock(t)

	mock.ExpectQuery(`SELECT id, name FROM customers ORDER BY name ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow("a", "Anna").AddRow("b", "Bruno"))

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Anna", list[0].Name)
}

func TestCustomerRepo_ListFiltered(t *testing.T) {
	repo, mock := newCustomerRepoWithMock(t)

	rows := pgxmock.NewRows([]string{"id", "name", "email", "image_url", "total_fascicoli"}).
		AddRow("a", "Anna", "anna@example.com", "/img.png", 3)
	mock.ExpectQuery(`(?s)LEFT JOIN fascicoli ON customers.id = fascicoli.customer_id.*customers.email ILIKE \$1.*LIMIT \$2 OFFSET \$3`).
		WithArgs("%ann%", 6, 0).
		WillReturnRows(rows)

	list, err := repo.ListFiltered(context.Background(), "ann", 6, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].TotalFascicoli)
}

func TestCustomerRepo_Count_Error(t *testing.T) {
	repo, mock := newCustomerRepoWithMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM customers`).WillReturnError(errors.New("db down"))

	_, err := repo.Count(context.Background())
	assert.Error(t, err)
}
