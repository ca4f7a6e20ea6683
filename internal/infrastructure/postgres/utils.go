package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/gestione-fascicoli/internal/domain"
)

const uniqueViolation = "23505"

// uniqueFields campo de formulario afectado por cada restricción de unicidad conocida.
var uniqueFields = map[string]string{
	"fascicoli_number_key": "number",
	"users_email_key":      "email",
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return strings.Contains(err.Error(), uniqueViolation)
}

// asConflict convierte una violación de unicidad en *domain.ConflictError.
// field se usa si la restricción no figura en uniqueFields.
func asConflict(err error, field string) error {
	if !isUniqueViolation(err) {
		return nil
	}
	ce := &domain.ConflictError{Field: field, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		ce.Constraint = pgErr.ConstraintName
		if f, ok := uniqueFields[pgErr.ConstraintName]; ok {
			ce.Field = f
		}
	}
	return ce
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern construye el patrón ILIKE de coincidencia por subcadena literal.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// validID indica si id puede compararse con una columna UUID.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
