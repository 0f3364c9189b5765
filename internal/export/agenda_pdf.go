package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
)

var agendaHeaders = []string{"Hora", "Barbero", "Cliente", "Teléfono", "Servicio"}

var agendaWidths = []float64{20, 40, 55, 45, 30}

// AgendaPDF renders one day's appointments as a printable table.
type AgendaPDF struct {
	BusinessName string
}

func NewAgendaPDF(businessName string) *AgendaPDF {
	return &AgendaPDF{BusinessName: businessName}
}

func (e *AgendaPDF) Render(date string, rows []dto.AppointmentListDTO) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	title := fmt.Sprintf("%s - Agenda %s", strings.ToUpper(e.BusinessName), date)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	for i, h := range agendaHeaders {
		pdf.CellFormat(agendaWidths[i], 8, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(rows) == 0 {
		pdf.CellFormat(sum(agendaWidths), 8, tr("Sin turnos para este día."), "1", 1, "C", false, 0, "")
	}
	for _, r := range rows {
		values := []string{r.Time, r.BarberName, r.ClientName, r.ClientPhone, r.ServiceType}
		for i, v := range values {
			pdf.CellFormat(agendaWidths[i], 7, tr(v), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total: %d", len(rows)), "", 1, "R", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render agenda pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sum(v []float64) float64 {
	total := 0.0
	for _, x := range v {
		total += x
	}
	return total
}
