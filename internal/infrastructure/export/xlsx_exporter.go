// Package export genera la planilla XLSX del directorio de negocios.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
)

var _ ports.BusinessExporter = (*XLSXExporter)(nil)

// SheetName nombre de la hoja exportada.
const SheetName = "Businesses"

var headers = []string{
	"ID", "Business Name", "Category", "Status", "Owner", "Owner Name",
	"Village", "District", "State", "Pincode", "Phone", "Email", "WhatsApp",
	"Employees", "Investment Required", "Investment Raised", "Products", "Start Date", "Created At",
}

// XLSXExporter implementa ports.BusinessExporter con excelize.
type XLSXExporter struct{}

// NewXLSXExporter construye el exportador.
func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

// ExportBusinesses una fila por negocio, cabecera congelada y autofiltro.
func (e *XLSXExporter) ExportBusinesses(items []dto.BusinessResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("export: renombrar hoja: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: cabecera: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"166534"}},
	})
	if err != nil {
		return nil, fmt.Errorf("export: estilo: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return nil, fmt.Errorf("export: estilo cabecera: %w", err)
	}

	for i, b := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			b.ID, b.BusinessName, b.Category, b.Status, b.Owner.UserID, b.Owner.Name,
			b.Location.Village, b.Location.District, b.Location.State, b.Location.Pincode,
			b.ContactInfo.Phone, b.ContactInfo.Email, b.ContactInfo.WhatsApp,
			b.Employees, b.Investment.Required.InexactFloat64(), b.Investment.Raised.InexactFloat64(),
			productNames(b.Products), startDate(b), b.CreatedAt.UTC().Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("export: fila %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("export: ancho columnas: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("export: congelar cabecera: %w", err)
	}
	lastRow := len(items) + 1
	if err := f.AutoFilter(SheetName, fmt.Sprintf("A1:%s%d", lastCol, lastRow), nil); err != nil {
		return nil, fmt.Errorf("export: autofiltro: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: escribir XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func productNames(products []dto.BusinessProductDTO) string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func startDate(b dto.BusinessResponse) string {
	if b.StartDate == nil {
		return ""
	}
	return b.StartDate.Format("2006-01-02")
}
