package ledger

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// Period es el intervalo cerrado [inicio-de-día(From), fin-de-día(To)] en hora local.
// Ambos extremos son obligatorios: el motor nunca asume "todo el histórico".
type Period struct {
	from time.Time
	to   time.Time
}

// NewPeriod construye el período normalizando From al inicio del día y To al final del día.
// Retorna ErrDateRangeRequired si falta alguno de los extremos.
func NewPeriod(from, to time.Time) (Period, error) {
	if from.IsZero() || to.IsZero() {
		return Period{}, domain.ErrDateRangeRequired
	}
	f := startOfDay(from)
	t := endOfDay(to)
	if t.Before(f) {
		return Period{}, domain.ErrInvalidInput
	}
	return Period{from: f, to: t}, nil
}

// From devuelve el extremo inferior normalizado (00:00:00 del día).
func (p Period) From() time.Time { return p.from }

// To devuelve el extremo superior normalizado (último nanosegundo del día).
func (p Period) To() time.Time { return p.to }

// IsZero indica si el período no fue construido con NewPeriod.
func (p Period) IsZero() bool { return p.from.IsZero() || p.to.IsZero() }

// Contains verifica la pertenencia inclusiva: from <= t <= to.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.from) && !t.After(p.to)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
