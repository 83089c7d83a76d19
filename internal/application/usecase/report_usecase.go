package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// PaymentsExcelGenerator genera el listado de pagos en XLSX.
type PaymentsExcelGenerator interface {
	Generate(payments []*entity.Payment) ([]byte, error)
}

// SummaryPDFGenerator genera el resumen financiero del panel en PDF.
type SummaryPDFGenerator interface {
	Generate(summary *dto.DashboardSummaryDTO) ([]byte, error)
}

// SummaryProvider abstrae al caso de uso del dashboard, que vive en otro paquete.
type SummaryProvider interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

// ReportUseCase arma los archivos descargables: pagos en Excel y resumen en PDF.
type ReportUseCase struct {
	payments repository.PaymentRepository
	summary  SummaryProvider
	excel    PaymentsExcelGenerator
	pdf      SummaryPDFGenerator
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(payments repository.PaymentRepository, summary SummaryProvider, excel PaymentsExcelGenerator, pdf SummaryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{payments: payments, summary: summary, excel: excel, pdf: pdf, now: time.Now}
}

// PaymentsExcel exporta los pagos a XLSX, con filtro opcional por mes
// calendario ("2006-01"). Devuelve el archivo y el nombre sugerido.
func (uc *ReportUseCase) PaymentsExcel(ctx context.Context, month string) ([]byte, string, error) {
	list, err := uc.payments.List(ctx, "payment_date", false)
	if err != nil {
		return nil, "", err
	}
	if month != "" {
		m, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, "", domain.ErrInvalidInput
		}
		filtered := make([]*entity.Payment, 0, len(list))
		for _, p := range list {
			if p.PaymentDate.Year() == m.Year() && p.PaymentDate.Month() == m.Month() {
				filtered = append(filtered, p)
			}
		}
		list = filtered
	}
	data, err := uc.excel.Generate(list)
	if err != nil {
		return nil, "", err
	}
	return data, "pagos_" + uc.now().Format("20060102") + ".xlsx", nil
}

// SummaryPDF exporta el resumen financiero vigente a PDF.
func (uc *ReportUseCase) SummaryPDF(ctx context.Context) ([]byte, string, error) {
	summary, err := uc.summary.GetSummary(ctx)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.Generate(summary)
	if err != nil {
		return nil, "", err
	}
	return data, "resumen_" + uc.now().Format("20060102") + ".pdf", nil
}
