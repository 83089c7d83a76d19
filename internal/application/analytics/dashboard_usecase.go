package analytics

import (
	"context"
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
	"github.com/tu-usuario/gestion-pyme/pkg/format"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
)

// DashboardUseCase arma el resumen financiero del panel.
//
// Carga los listados que necesita en paralelo y computa los agregados en memoria.
// La falla de un listado individual se registra y aporta una lista vacía en
// lugar de abortar el resumen completo: el panel se arma con lo que haya.
type DashboardUseCase struct {
	invoices  repository.InvoiceRepository
	employees repository.EmployeeRepository
	payments  repository.PaymentRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	invoices repository.InvoiceRepository,
	employees repository.EmployeeRepository,
	payments repository.PaymentRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		invoices:  invoices,
		employees: employees,
		payments:  payments,
		log:       log,
		now:       time.Now,
	}
}

// GetSummary construye el DashboardSummaryDTO con los KPIs del panel.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	// "hoy" se captura una sola vez para toda la pasada
	now := uc.now()

	type invoicesResult struct {
		list []*entity.Invoice
		err  error
	}
	type employeesResult struct {
		list []*entity.Employee
		err  error
	}
	type paymentsResult struct {
		list []*entity.Payment
		err  error
	}
	invCh := make(chan invoicesResult, 1)
	empCh := make(chan employeesResult, 1)
	payCh := make(chan paymentsResult, 1)

	go func() {
		list, err := uc.invoices.List(ctx, "due_date", true)
		invCh <- invoicesResult{list, err}
	}()
	go func() {
		list, err := uc.employees.List(ctx, "name", true)
		empCh <- employeesResult{list, err}
	}()
	go func() {
		list, err := uc.payments.List(ctx, "payment_date", false)
		payCh <- paymentsResult{list, err}
	}()
	inv := <-invCh
	emp := <-empCh
	pay := <-payCh

	if inv.err != nil {
		uc.log.Warn().Err(inv.err).Msg("dashboard: listado de facturas falló, se usa lista vacía")
		inv.list = nil
	}
	if emp.err != nil {
		uc.log.Warn().Err(emp.err).Msg("dashboard: listado de empleados falló, se usa lista vacía")
		emp.list = nil
	}
	if pay.err != nil {
		uc.log.Warn().Err(pay.err).Msg("dashboard: listado de pagos falló, se usa lista vacía")
		pay.list = nil
	}
	pending := SumByStatus(inv.list, entity.InvoiceStatusPending)
	overdue := SumByStatus(inv.list, entity.InvoiceStatusOverdue)

	upcoming := UpcomingDue(inv.list, now)
	upcomingDTOs := make([]dto.UpcomingInvoiceDTO, 0, len(upcoming))
	for _, i := range upcoming {
		upcomingDTOs = append(upcomingDTOs, dto.UpcomingInvoiceDTO{
			ID:           i.ID,
			SupplierName: i.SupplierName,
			Number:       i.Number,
			Amount:       i.Amount,
			DueDate:      i.DueDate.Format(dto.DateLayout),
			DueLabel:     DueDaysLabel(now, i.DueDate),
		})
	}

	bySupplier := AmountBySupplier(inv.list)
	bySupplierDTOs := make([]dto.SupplierAmountDTO, 0, len(bySupplier))
	for _, s := range bySupplier {
		bySupplierDTOs = append(bySupplierDTOs, dto.SupplierAmountDTO{
			SupplierName: s.SupplierName,
			Total:        s.Total,
		})
	}

	return &dto.DashboardSummaryDTO{
		PendingTotal:     pending.Total,
		PendingCount:     pending.Count,
		OverdueTotal:     overdue.Total,
		OverdueCount:     overdue.Count,
		TotalSalaries:    TotalSalaries(emp.list),
		PaidThisMonth:    PaidInMonth(pay.list, now),
		UpcomingDue:      upcomingDTOs,
		AmountBySupplier: bySupplierDTOs,
		DateLabel:        format.MonthLabel(now),
	}, nil
}
