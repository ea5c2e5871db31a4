package entity

import (
	"fmt"
	"strings"
	"time"
)

// FormatoFecha es el formato de calendario usado en los documentos persistidos.
const FormatoFecha = "2006-01-02"

// Fecha es una fecha de calendario sin hora. Se serializa como "2006-01-02",
// el mismo formato que guardan los documentos JSON del almacén.
type Fecha struct {
	time.Time
}

// NuevaFecha construye una fecha a partir de año, mes y día.
func NuevaFecha(anio int, mes time.Month, dia int) Fecha {
	return Fecha{time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)}
}

// FechaDe trunca un instante a su fecha de calendario.
func FechaDe(t time.Time) Fecha {
	return NuevaFecha(t.Year(), t.Month(), t.Day())
}

// ParsearFecha interpreta "2006-01-02". Cadena vacía devuelve la fecha cero.
func ParsearFecha(s string) (Fecha, error) {
	if s == "" {
		return Fecha{}, nil
	}
	t, err := time.Parse(FormatoFecha, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return Fecha{t}, nil
}

// SumarMeses devuelve la fecha desplazada n meses (mismo día, con la
// normalización estándar de time.AddDate para fin de mes).
func (f Fecha) SumarMeses(n int) Fecha {
	return FechaDe(f.AddDate(0, n, 0))
}

// MismoMes indica si la fecha cae en el mes y año de referencia.
func (f Fecha) MismoMes(ref time.Time) bool {
	return f.Month() == ref.Month() && f.Year() == ref.Year()
}

func (f Fecha) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Format(FormatoFecha)
}

// MarshalJSON serializa la fecha como "2006-01-02".
func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON acepta "2006-01-02", cadena vacía o null.
func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = Fecha{}
		return nil
	}
	parsed, err := ParsearFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
