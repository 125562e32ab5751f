package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/export"
)

func TestExportBusinesses(t *testing.T) {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	out, err := export.NewXLSXExporter().ExportBusinesses([]dto.BusinessResponse{
		{
			ID: "b1", BusinessName: "Ravi Dairy", Category: "Dairy", Status: "active",
			Owner:      dto.OwnerSummary{UserID: "ravi01", Name: "Ravi"},
			Location:   dto.LocationDTO{District: "Pune", State: "Maharashtra"},
			Investment: dto.InvestmentDTO{Required: decimal.NewFromInt(50000), Raised: decimal.Zero},
			Employees:  3,
			StartDate:  &start,
			Products:   []dto.BusinessProductDTO{{Name: "Milk"}, {Name: "Paneer"}},
			CreatedAt:  time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		},
		{ID: "b2", BusinessName: "Sunita Crafts", Category: "Handicrafts", Status: "planning", Employees: 1},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Business Name", rows[0][1])
	assert.Equal(t, "Ravi Dairy", rows[1][1])
	assert.Equal(t, "ravi01", rows[1][4])
	assert.Equal(t, "50000", rows[1][14])
	assert.Equal(t, "Milk, Paneer", rows[1][16])
	assert.Equal(t, "2023-06-01", rows[1][17])
	assert.Equal(t, "2024-01-02 10:30", rows[1][18])
	assert.Equal(t, "Sunita Crafts", rows[2][1])
}

func TestExportBusinesses_Vacio(t *testing.T) {
	out, err := export.NewXLSXExporter().ExportBusinesses(nil)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
