package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Los documentos persistidos guardan importes como números JSON, no como
	// cadenas entrecomilladas.
	decimal.MarshalJSONWithoutQuotes = true
}

// Prefijos de identificador por colección.
const (
	PrefijoInquilino = "inq"
	PrefijoTrastero  = "trastero"
	PrefijoPago      = "pago"
	PrefijoGasto     = "gasto"
)

// NuevoID genera un identificador "{prefijo}_{unixMillis}_{sufijo}". El sufijo
// aleatorio hace que dos altas en el mismo milisegundo no colisionen en la
// práctica; no es una garantía de unicidad global.
func NuevoID(prefijo string) string {
	sufijo := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefijo, time.Now().UnixMilli(), sufijo)
}
