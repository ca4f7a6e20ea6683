package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/repository"
)

var _ repository.FascicoloRepository = (*FascicoloRepo)(nil)

// FascicoloRepo implementación de FascicoloRepository (usable con pool o tx).
type FascicoloRepo struct {
	q Querier
}

// NewFascicoloRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFascicoloRepository(q Querier) *FascicoloRepo {
	return &FascicoloRepo{q: q}
}

// Create persiste un nuevo fascicolo. Devuelve *domain.ConflictError si el número existe.
func (r *FascicoloRepo) Create(ctx context.Context, f *entity.Fascicolo) error {
	query := `
		INSERT INTO fascicoli (id, customer_id, type, number, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, f.ID, f.CustomerID, f.Type, f.Number, f.Date)
	if err != nil {
		if ce := asConflict(err, "number"); ce != nil {
			return ce
		}
		return fmt.Errorf("insert fascicolo: %w", err)
	}
	return nil
}

// Update actualiza cliente, tipo y número. La fecha de creación no se toca.
func (r *FascicoloRepo) Update(ctx context.Context, f *entity.Fascicolo) error {
	if !validID(f.ID) {
		return nil
	}
	query := `
		UPDATE fascicoli
		SET customer_id = $2, type = $3, number = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, f.ID, f.CustomerID, f.Type, f.Number)
	if err != nil {
		if ce := asConflict(err, "number"); ce != nil {
			return ce
		}
		return fmt.Errorf("update fascicolo: %w", err)
	}
	return nil
}

// Delete elimina un fascicolo por ID.
func (r *FascicoloRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM fascicoli WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete fascicolo: %w", err)
	}
	return nil
}

// GetFormByID obtiene los datos editables de un fascicolo; nil si no existe.
func (r *FascicoloRepo) GetFormByID(ctx context.Context, id string) (*repository.FascicoloForm, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `
		SELECT fascicoli.id, fascicoli.customer_id, fascicoli.type, fascicoli.number
		FROM fascicoli
		WHERE fascicoli.id = $1`
	var f repository.FascicoloForm
	err := r.q.QueryRow(ctx, query, id).Scan(&f.ID, &f.CustomerID, &f.Type, &f.Number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fascicolo: %w", err)
	}
	return &f, nil
}

const fascicoloFilter = `
		FROM fascicoli
		JOIN customers ON fascicoli.customer_id = customers.id
		WHERE
			customers.name ILIKE $1 OR
			customers.email ILIKE $1 OR
			fascicoli.type ILIKE $1 OR
			fascicoli.date::text ILIKE $1 OR
			fascicoli.number::text ILIKE $1`

// ListFiltered lista fascicoli con los datos del cliente, los más recientes primero.
func (r *FascicoloRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]repository.FascicoloRow, error) {
	sql := `
		SELECT fascicoli.id, fascicoli.customer_id, fascicoli.type, fascicoli.number, fascicoli.date,
		       customers.name, customers.email, customers.image_url` + fascicoloFilter + `
		ORDER BY fascicoli.date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fascicoli: %w", err)
	}
	defer rows.Close()
	var list []repository.FascicoloRow
	for rows.Next() {
		var f repository.FascicoloRow
		if err := rows.Scan(&f.ID, &f.CustomerID, &f.Type, &f.Number, &f.Date,
			&f.CustomerName, &f.CustomerEmail, &f.ImageURL); err != nil {
			return nil, fmt.Errorf("scan fascicolo: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// CountFiltered cuenta los fascicoli que coinciden con query.
func (r *FascicoloRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+fascicoloFilter, likePattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count fascicoli: %w", err)
	}
	return n, nil
}

// Count cuenta todos los fascicoli.
func (r *FascicoloRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM fascicoli`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count fascicoli: %w", err)
	}
	return n, nil
}
