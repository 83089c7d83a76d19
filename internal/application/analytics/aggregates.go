// Package analytics contiene los agregados financieros del dashboard.
// Todos son funciones puras sobre los listados cargados: con cientos de filas
// no hace falta mantenimiento incremental ni agregación en la base.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// upcomingWindowDays ventana de "próximos vencimientos": hoy a hoy+7 inclusive.
const upcomingWindowDays = 7

// upcomingLimit máximo de facturas en el widget de próximos vencimientos.
const upcomingLimit = 5

// StatusTotal suma y cantidad de facturas en un estado.
type StatusTotal struct {
	Total decimal.Decimal
	Count int
}

// SumByStatus suma los montos de las facturas cuyo estado almacenado es status.
func SumByStatus(invoices []*entity.Invoice, status string) StatusTotal {
	out := StatusTotal{Total: decimal.Zero}
	for _, inv := range invoices {
		if inv.Status == status {
			out.Total = out.Total.Add(inv.Amount)
			out.Count++
		}
	}
	return out
}

// TotalSalaries suma los sueldos vigentes de todos los empleados (nómina
// actual, sin filtro de fecha).
func TotalSalaries(employees []*entity.Employee) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.Salary)
	}
	return total
}

// PaidInMonth suma los pagos cuyo payment_date cae en el mes calendario de ref.
func PaidInMonth(payments []*entity.Payment, ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.PaymentDate.Year() == ref.Year() && p.PaymentDate.Month() == ref.Month() {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// UpcomingDue devuelve hasta upcomingLimit facturas pendientes que vencen entre
// hoy y hoy+7 inclusive, ordenadas por vencimiento ascendente.
func UpcomingDue(invoices []*entity.Invoice, today time.Time) []*entity.Invoice {
	var out []*entity.Invoice
	for _, inv := range invoices {
		if inv.Status != entity.InvoiceStatusPending {
			continue
		}
		d := DueDays(today, inv.DueDate)
		if d < 0 || d > upcomingWindowDays {
			continue
		}
		out = append(out, inv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}
	return out
}

// SupplierAmount total facturado de un proveedor.
type SupplierAmount struct {
	SupplierName string
	Total        decimal.Decimal
}

// AmountBySupplier acumula el monto de todas las facturas (sin importar
// estado) por nombre de proveedor, una entrada por nombre distinto, en orden
// de primera aparición en el listado.
func AmountBySupplier(invoices []*entity.Invoice) []SupplierAmount {
	index := make(map[string]int, len(invoices))
	var out []SupplierAmount
	for _, inv := range invoices {
		name := inv.SupplierName
		if name == "" {
			name = entity.NoSupplierName
		}
		i, ok := index[name]
		if !ok {
			index[name] = len(out)
			out = append(out, SupplierAmount{SupplierName: name, Total: inv.Amount})
			continue
		}
		out[i].Total = out[i].Total.Add(inv.Amount)
	}
	return out
}

// DueDays diferencia entera de días entre el inicio de hoy (medianoche) y el
// vencimiento evaluado al mediodía, para esquivar cortes de zona horaria.
// Negativo = vencida, 0 = vence hoy, 1 = mañana. today debe capturarse una
// sola vez por pasada para no derivar a mitad del cómputo.
func DueDays(today, due time.Time) int {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	noon := time.Date(due.Year(), due.Month(), due.Day(), 12, 0, 0, 0, today.Location())
	return int(math.Floor(noon.Sub(start).Hours() / 24))
}

// DueDaysLabel etiqueta de vencimiento para mostrar junto a una factura.
// Es independiente del estado almacenado: una factura "pendiente" puede
// mostrar "overdue by N days" sin que el sistema le cambie el estado.
func DueDaysLabel(today, due time.Time) string {
	d := DueDays(today, due)
	switch {
	case d < 0:
		return fmt.Sprintf("overdue by %d days", -d)
	case d == 0:
		return "due today"
	case d == 1:
		return "due tomorrow"
	default:
		return fmt.Sprintf("due in %d days", d)
	}
}
