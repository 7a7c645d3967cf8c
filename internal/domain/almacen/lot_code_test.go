package almacen_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gestion-almacenes/almacenes-api/internal/domain/almacen"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLotCode_Formato(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	code := almacen.GenerateLotCode(now)

	assert.True(t, strings.HasPrefix(code, "L20240315103045-"), "prefijo de fecha: %s", code)
	parts := strings.SplitN(code, "-", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[1], 8)
}

// Llamadas dentro del mismo segundo no deben colisionar: el esquema anterior
// basado solo en el reloj producía duplicados aquí.
func TestGenerateLotCode_SinColisionesEnElMismoSegundo(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := almacen.GenerateLotCode(now)
		require.False(t, seen[code], "código duplicado: %s", code)
		seen[code] = true
	}
}

func TestDefaultLotBreakdown(t *testing.T) {
	total := decimal.NewFromInt(100)
	entries := almacen.DefaultLotBreakdown(total, time.Now())

	require.Len(t, entries, 1)
	assert.Equal(t, "n/a", entries[0].PackingCode)
	assert.True(t, entries[0].Amount.Equal(total))
	assert.Nil(t, entries[0].Expiration)
	assert.NotEmpty(t, entries[0].Code)
	assert.Nil(t, entries[0].PhysicalLotID)
}
