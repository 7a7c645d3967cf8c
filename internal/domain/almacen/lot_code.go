package almacen

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateLotCode genera el código de un lote: prefijo de fecha legible más
// un sufijo aleatorio. El reloj solo no alcanza: dos llamadas dentro del
// mismo segundo producirían códigos duplicados; el sufijo uuid elimina esa
// colisión.
func GenerateLotCode(now time.Time) string {
	return fmt.Sprintf("L%s-%s", now.Format("20060102150405"), uuid.New().String()[:8])
}
