package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, customer.ID, customer.Name, customer.Email, customer.ImageURL)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// ListAll lista id y nombre de todos los clientes, por nombre.
func (r *CustomerRepo) ListAll(ctx context.Context) ([]repository.CustomerField, error) {
	query := `SELECT id, name FROM customers ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerField
	for rows.Next() {
		var c repository.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

const customerFilter = `
		WHERE customers.name ILIKE $1 OR customers.email ILIKE $1`

// ListFiltered lista clientes cuyo nombre o email contienen query, con el total de fascicoli.
func (r *CustomerRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]repository.CustomerSummary, error) {
	sql := `
		SELECT customers.id, customers.name, customers.email, customers.image_url,
		       COUNT(fascicoli.id) AS total_fascicoli
		FROM customers
		LEFT JOIN fascicoli ON customers.id = fascicoli.customer_id` + customerFilter + `
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list filtered customers: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerSummary
	for rows.Next() {
		var c repository.CustomerSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.TotalFascicoli); err != nil {
			return nil, fmt.Errorf("scan customer summary: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountFiltered cuenta los clientes que coinciden con query.
func (r *CustomerRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+customerFilter, likePattern(query)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// Count cuenta todos los clientes.
func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
