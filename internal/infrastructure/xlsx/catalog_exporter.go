// Package xlsx exporta el catálogo de productos a una hoja de cálculo.
package xlsx

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"

	"github.com/jhoicas/raash-api/internal/domain/entity"
)

// ContentType tipo MIME del archivo generado.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Products"

var catalogHeaders = []string{"ID", "Name", "Category", "Price", "ImagePath", "Description", "CreatedAt"}

// CatalogExporter escribe el catálogo en formato .xlsx.
type CatalogExporter struct{}

// NewCatalogExporter construye el exportador.
func NewCatalogExporter() *CatalogExporter { return &CatalogExporter{} }

// WriteCatalog genera una hoja con cabecera y una fila por producto.
func (e *CatalogExporter) WriteCatalog(w io.Writer, products []*entity.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsx: crear hoja: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range catalogHeaders {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt64(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetString(p.Price.StringFixed(2))
		row.AddCell().SetString(p.ImagePath)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("xlsx: escribir archivo: %w", err)
	}
	return nil
}
