package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/gestion-pyme/pkg/format"
)

func TestCurrency_SinDecimalesYSeparadorDeMiles(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$ 0"},
		{"950", "$ 950"},
		{"12500", "$ 12.500"},
		{"12500.49", "$ 12.500"},   // redondea hacia abajo
		{"12500.50", "$ 12.501"},   // half-up
		{"1234567", "$ 1.234.567"}, // agrupado es-AR
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		assert.NoError(t, err)
		assert.Equal(t, c.want, format.Currency(d), "monto %s", c.in)
	}
}

func TestDate_FormatoArgentino(t *testing.T) {
	d := time.Date(2024, time.June, 9, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "09/06/2024", format.Date(d))
}

func TestDate_FechaCeroDevuelveVacio(t *testing.T) {
	assert.Equal(t, "", format.Date(time.Time{}))
}
