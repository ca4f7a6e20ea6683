package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestione-fascicoli/internal/domain"
)

func TestLikePattern_EscapaComodines(t *testing.T) {
	cases := map[string]string{
		"":         "%%",
		"rossi":    "%rossi%",
		"50%":      `%50\%%`,
		"a_b":      `%a\_b%`,
		`c:\docs`:  `%c:\\docs%`,
		"2026-10":  "%2026-10%",
	}
	for in, want := range cases {
		assert.Equal(t, want, likePattern(in), "input %q", in)
	}
}

func TestAsConflict(t *testing.T) {
	assert.Nil(t, asConflict(errors.New("otro"), "number"))

	err := asConflict(&pgconn.PgError{Code: "23505", ConstraintName: "restriccion_desconocida"}, "number")
	var ce *domain.ConflictError
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, "number", ce.Field, "sin mapeo se usa el campo por defecto")

	err = asConflict(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, "number")
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, "email", ce.Field)

	assert.Nil(t, asConflict(&pgconn.PgError{Code: "23503"}, "number"), "FK no es conflicto de unicidad")
}
