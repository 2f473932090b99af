package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/ledger"
)

func TestNewPeriod_NormalizaExtremos(t *testing.T) {
	from := time.Date(2025, 6, 1, 14, 22, 7, 0, time.Local)
	to := time.Date(2025, 6, 30, 8, 5, 0, 0, time.Local)

	p, err := ledger.NewPeriod(from, to)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local), p.From(),
		"From debe normalizarse al inicio del día")
	assert.Equal(t, 23, p.To().Hour())
	assert.Equal(t, 59, p.To().Minute())
	assert.Equal(t, 59, p.To().Second())
	assert.Equal(t, 30, p.To().Day(), "To debe quedar dentro del mismo día")
}

func TestNewPeriod_SinExtremo_RetornaErrDateRangeRequired(t *testing.T) {
	valid := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

	_, err := ledger.NewPeriod(time.Time{}, valid)
	assert.ErrorIs(t, err, domain.ErrDateRangeRequired, "falta from")

	_, err = ledger.NewPeriod(valid, time.Time{})
	assert.ErrorIs(t, err, domain.ErrDateRangeRequired, "falta to")

	_, err = ledger.NewPeriod(time.Time{}, time.Time{})
	assert.ErrorIs(t, err, domain.ErrDateRangeRequired, "faltan ambos")
}

func TestNewPeriod_RangoInvertido_RetornaError(t *testing.T) {
	from := time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	_, err := ledger.NewPeriod(from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un período de un solo día es válido: cubre de 00:00:00 al último nanosegundo.
func TestNewPeriod_MismoDia(t *testing.T) {
	day := time.Date(2025, 6, 15, 16, 45, 0, 0, time.Local)
	p, err := ledger.NewPeriod(day, day)
	require.NoError(t, err)

	assert.True(t, p.Contains(time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)))
	assert.True(t, p.Contains(time.Date(2025, 6, 15, 23, 59, 59, 0, time.Local)))
	assert.False(t, p.Contains(time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)))
	assert.False(t, p.Contains(time.Date(2025, 6, 14, 23, 59, 59, 0, time.Local)))
}

func TestPeriod_IsZero(t *testing.T) {
	var zero ledger.Period
	assert.True(t, zero.IsZero())

	p, err := ledger.NewPeriod(time.Now(), time.Now())
	require.NoError(t, err)
	assert.False(t, p.IsZero())
}
