package orders

import (
	"time"

	"github.com/gestion-almacenes/almacenes-api/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// parseDate convierte "YYYY-MM-DD" en *time.Time; cadena vacía devuelve nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.NewValidation("fecha inválida (%s), formato esperado YYYY-MM-DD", s)
	}
	return &t, nil
}

// parseClock convierte "HH:MM:SS" en *time.Time; cadena vacía devuelve nil.
func parseClock(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return nil, domain.NewValidation("hora inválida (%s), formato esperado HH:MM:SS", s)
	}
	return &t, nil
}

// parseDatePtr variante para campos opcionales.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return parseDate(*s)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
