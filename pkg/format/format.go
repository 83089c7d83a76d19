// Package format concentra el formato de presentación de montos y fechas.
// Locale fijo es-AR y moneda ARS sin decimales; los valores formateados son
// solo presentación, nunca se persisten.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// Currency devuelve el monto como moneda argentina sin decimales, ej: "$ 12.500".
// Redondea a entero (half-up, vía decimal.Round).
func Currency(d decimal.Decimal) string {
	return printer.Sprintf("$ %v", number.Decimal(d.Round(0).IntPart()))
}

// Date devuelve la fecha en formato dd/mm/aaaa. Fecha cero -> cadena vacía.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

var months = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName nombre del mes en castellano, para descripciones y etiquetas.
func MonthName(m time.Month) string {
	return months[m-1]
}

// MonthLabel etiqueta legible de mes y año, ej: "Febrero 2026".
func MonthLabel(t time.Time) string {
	return MonthName(t.Month()) + " " + t.Format("2006")
}
