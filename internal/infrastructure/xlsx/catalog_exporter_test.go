package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/jhoicas/raash-api/internal/domain/entity"
)

func TestWriteCatalog_CabeceraYFilas(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "Silk Kurta", Category: "men", Price: decimal.RequireFromString("1299"), ImagePath: "images/kurta.jpg", Description: "Seda", CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{ID: 2, Name: "Cotton Saree", Category: "women", Price: decimal.RequireFromString("899.5")},
	}

	var buf bytes.Buffer
	require.NoError(t, NewCatalogExporter().WriteCatalog(&buf, products))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	sheet := file.Sheets[0]
	assert.Equal(t, sheetName, sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "Description", sheet.Rows[0].Cells[5].String())
	assert.Equal(t, "Silk Kurta", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "1299.00", sheet.Rows[1].Cells[3].String())
	assert.Equal(t, "2025-01-02 03:04:05", sheet.Rows[1].Cells[6].String())
	assert.Equal(t, "899.50", sheet.Rows[2].Cells[3].String())
}

func TestWriteCatalog_CatalogoVacioSoloCabecera(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCatalogExporter().WriteCatalog(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, file.Sheets[0].Rows, 1)
}
