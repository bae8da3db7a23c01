package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/testutil"
	"github.com/xuri/excelize/v2"
)

func setupExportTest(t *testing.T) (*ExportService, *PedidoService) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	if err := db.AutoMigrate(
		&entity.Supplier{},
		&entity.Location{},
		&entity.Category{},
		&entity.Solicitante{},
		&entity.TableStatus{},
		&entity.Material{},
		&entity.Pedido{},
		&entity.Machine{},
		&entity.Call{},
	); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	repos := repository.NewRepositories(db)
	return NewExportService(repos.Pedido, repos.Material, repos.Call), NewPedidoService(repos.Pedido)
}

func TestPedidosCSVExport(t *testing.T) {
	exports, pedidos := setupExportTest(t)
	ctx := context.Background()

	aceptado := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := pedidos.Create(ctx, PedidoInput{
		Tipo:         "material",
		Descripcion:  "PP granulate order",
		Cantidad:     3,
		PrecioUnidad: 9.5,
		Aceptado:     &aceptado,
		Days:         14,
	}, "user-1"); err != nil {
		t.Fatalf("seed pedido failed: %v", err)
	}

	data, err := exports.PedidosCSV(ctx, nil)
	if err != nil {
		t.Fatalf("PedidosCSV failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "Tipo" {
		t.Errorf("Expected header row, got %v", records[0])
	}

	row := records[1]
	if row[0] != "material" {
		t.Errorf("Expected tipo 'material', got %q", row[0])
	}
	if row[7] != "28.50" {
		t.Errorf("Expected importe '28.50', got %q", row[7])
	}
	if row[10] != "2024-03-15" {
		t.Errorf("Expected receiving date '2024-03-15', got %q", row[10])
	}
}

func TestPedidosXLSXExport(t *testing.T) {
	exports, pedidos := setupExportTest(t)
	ctx := context.Background()

	if _, err := pedidos.Create(ctx, PedidoInput{
		Tipo:         "consumable",
		Cantidad:     2,
		PrecioUnidad: 5,
	}, "user-1"); err != nil {
		t.Fatalf("seed pedido failed: %v", err)
	}

	data, err := exports.PedidosXLSX(ctx, nil)
	if err != nil {
		t.Fatalf("PedidosXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Pedidos")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header + 1 row, got %d", len(rows))
	}
	if rows[1][0] != "consumable" {
		t.Errorf("Expected tipo 'consumable', got %q", rows[1][0])
	}
	if rows[1][7] != "10.00" {
		t.Errorf("Expected importe '10.00', got %q", rows[1][7])
	}
}

func TestCallsCSVExport(t *testing.T) {
	exports, _ := setupExportTest(t)
	ctx := context.Background()

	if err := exports.callRepo.Create(ctx, &entity.Call{
		ID: "call-1", Quantity: 12.5, Status: entity.CallStatusPendiente, Duration: 90,
	}); err != nil {
		t.Fatalf("seed call failed: %v", err)
	}
	if err := exports.callRepo.Create(ctx, &entity.Call{
		ID: "call-2", Quantity: 4, Status: entity.CallStatusRealizada, Duration: 30,
	}); err != nil {
		t.Fatalf("seed call failed: %v", err)
	}

	data, err := exports.CallsCSV(ctx, "")
	if err != nil {
		t.Fatalf("CallsCSV failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "Machine" {
		t.Errorf("Expected header row, got %v", records[0])
	}

	// Status filter narrows the listing.
	filtered, err := exports.CallsCSV(ctx, entity.CallStatusRealizada)
	if err != nil {
		t.Fatalf("CallsCSV with status failed: %v", err)
	}
	records, err = csv.NewReader(bytes.NewReader(filtered)).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected header + 1 completed row, got %d", len(records))
	}
	if records[1][3] != entity.CallStatusRealizada {
		t.Errorf("Expected status %q, got %q", entity.CallStatusRealizada, records[1][3])
	}
}

func TestCallsXLSXExport(t *testing.T) {
	exports, _ := setupExportTest(t)
	ctx := context.Background()

	if err := exports.callRepo.Create(ctx, &entity.Call{
		ID: "call-1", Quantity: 7, Status: entity.CallStatusPendiente, Duration: 45,
	}); err != nil {
		t.Fatalf("seed call failed: %v", err)
	}

	data, err := exports.CallsXLSX(ctx, "")
	if err != nil {
		t.Fatalf("CallsXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Calls")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header + 1 row, got %d", len(rows))
	}
	if rows[1][2] != "7.00" {
		t.Errorf("Expected quantity '7.00', got %q", rows[1][2])
	}
	if rows[1][4] != "45" {
		t.Errorf("Expected duration '45', got %q", rows[1][4])
	}
}

func TestMaterialListSorting(t *testing.T) {
	exports, _ := setupExportTest(t)
	ctx := context.Background()

	for _, m := range []entity.Material{
		{ID: "mat-1", Reference: "PP-GF30", CurrentStock: 50},
		{ID: "mat-2", Reference: "ABS-01", CurrentStock: 200},
		{ID: "mat-3", Reference: "PC-10", CurrentStock: 5},
	} {
		material := m
		if err := exports.materialRepo.Create(ctx, &material); err != nil {
			t.Fatalf("seed material failed: %v", err)
		}
	}

	items, _, err := exports.materialRepo.FindAll(ctx, 1, 20, map[string]string{
		"sort_by":    "current_stock",
		"sort_order": "desc",
	})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 materials, got %d", len(items))
	}
	if items[0].Reference != "ABS-01" || items[2].Reference != "PC-10" {
		t.Errorf("Expected stock-descending order, got %v, %v, %v",
			items[0].Reference, items[1].Reference, items[2].Reference)
	}

	// Unknown sort column keeps the reference default.
	items, _, err = exports.materialRepo.FindAll(ctx, 1, 20, map[string]string{
		"sort_by": "nonexistent",
	})
	if err != nil {
		t.Fatalf("FindAll with unknown sort column failed: %v", err)
	}
	if items[0].Reference != "ABS-01" || items[1].Reference != "PC-10" {
		t.Errorf("Expected reference order fallback, got %v, %v",
			items[0].Reference, items[1].Reference)
	}
}

func TestMaterialsCSVExportFilters(t *testing.T) {
	exports, _ := setupExportTest(t)
	ctx := context.Background()

	if err := exports.materialRepo.Create(ctx, &entity.Material{
		ID: "mat-1", Reference: "PP-GF30", CurrentStock: 50, Critical: true,
	}); err != nil {
		t.Fatalf("seed material failed: %v", err)
	}
	if err := exports.materialRepo.Create(ctx, &entity.Material{
		ID: "mat-2", Reference: "ABS-01", CurrentStock: 20,
	}); err != nil {
		t.Fatalf("seed material failed: %v", err)
	}

	data, err := exports.MaterialsCSV(ctx, map[string]string{"critical": "true"})
	if err != nil {
		t.Fatalf("MaterialsCSV failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected header + 1 critical row, got %d", len(records))
	}
	if records[1][0] != "PP-GF30" {
		t.Errorf("Expected critical material only, got %q", records[1][0])
	}
}
