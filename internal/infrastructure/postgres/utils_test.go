package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: codeUniqueViolation}
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert medicine: %w", unique)), "debe detectarse envuelto con %%w")
	assert.False(t, isUniqueViolation(errors.New("otro error")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: codeForeignKeyViolation}))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: codeForeignKeyViolation}
	assert.True(t, isForeignKeyViolation(fk))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("insert sale item: %w", fk)))
	assert.False(t, isForeignKeyViolation(errors.New("otro error")))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: codeUniqueViolation}))
}
