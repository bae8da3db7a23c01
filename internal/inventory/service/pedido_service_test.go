package service

import (
	"context"
	"testing"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/testutil"
	"gorm.io/gorm"
)

func setupPedidoTest(t *testing.T) (*PedidoService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	if err := db.AutoMigrate(
		&entity.Supplier{},
		&entity.Solicitante{},
		&entity.TableStatus{},
		&entity.Material{},
		&entity.Pedido{},
	); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	repos := repository.NewRepositories(db)
	return NewPedidoService(repos.Pedido), db
}

func TestPedidoCreateDerivesFromMaterial(t *testing.T) {
	svc, db := setupPedidoTest(t)
	ctx := context.Background()

	db.Create(&entity.Supplier{ID: "sup-1", Name: "Resinex"})
	supID := "sup-1"
	db.Create(&entity.Material{
		ID:          "mat-1",
		Reference:   "PP-GF30",
		Description: "PP granulate",
		Price:       9.5,
		SupplierID:  &supID,
	})

	matID := "mat-1"
	aceptado := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pedido, err := svc.Create(ctx, PedidoInput{
		Tipo:         "material",
		ReferenciaID: &matID,
		Cantidad:     3,
		Aceptado:     &aceptado,
		Days:         14,
	}, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if pedido.PrecioUnidad != 9.5 {
		t.Errorf("Expected unit price 9.5 from material, got %v", pedido.PrecioUnidad)
	}
	if pedido.ImportePedido != 28.5 {
		t.Errorf("Expected importe 28.5, got %v", pedido.ImportePedido)
	}
	if pedido.Proveedor != "Resinex" {
		t.Errorf("Expected proveedor 'Resinex', got %v", pedido.Proveedor)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if pedido.DateReceiving == nil || !pedido.DateReceiving.UTC().Equal(want) {
		t.Errorf("Expected receiving date %v, got %v", want, pedido.DateReceiving)
	}
}

func TestPedidoUpdateRecomputesDerived(t *testing.T) {
	svc, _ := setupPedidoTest(t)
	ctx := context.Background()

	pedido, err := svc.Create(ctx, PedidoInput{
		Tipo:         "consumable",
		Cantidad:     2,
		PrecioUnidad: 10,
	}, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if pedido.ImportePedido != 20 {
		t.Errorf("Expected importe 20, got %v", pedido.ImportePedido)
	}

	updated, err := svc.Update(ctx, pedido.ID, PedidoInput{
		Tipo:         "consumable",
		Cantidad:     5,
		PrecioUnidad: 10,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ImportePedido != 50 {
		t.Errorf("Expected importe recomputed to 50, got %v", updated.ImportePedido)
	}
	if updated.DateReceiving != nil {
		t.Errorf("Expected no receiving date without acceptance, got %v", updated.DateReceiving)
	}
}

func TestPedidoListSorting(t *testing.T) {
	svc, _ := setupPedidoTest(t)
	ctx := context.Background()

	for _, p := range []struct {
		cantidad float64
		precio   float64
	}{
		{cantidad: 2, precio: 10}, // importe 20
		{cantidad: 1, precio: 5},  // importe 5
		{cantidad: 3, precio: 20}, // importe 60
	} {
		if _, err := svc.Create(ctx, PedidoInput{
			Tipo:         "material",
			Cantidad:     p.cantidad,
			PrecioUnidad: p.precio,
		}, "user-1"); err != nil {
			t.Fatalf("seed pedido failed: %v", err)
		}
	}

	items, _, err := svc.List(ctx, 1, 20, map[string]string{
		"sort_by":    "importe_pedido",
		"sort_order": "asc",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 pedidos, got %d", len(items))
	}
	if items[0].ImportePedido != 5 || items[1].ImportePedido != 20 || items[2].ImportePedido != 60 {
		t.Errorf("Expected ascending importe order, got %v, %v, %v",
			items[0].ImportePedido, items[1].ImportePedido, items[2].ImportePedido)
	}

	items, _, err = svc.List(ctx, 1, 20, map[string]string{
		"sort_by":    "importe_pedido",
		"sort_order": "desc",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if items[0].ImportePedido != 60 {
		t.Errorf("Expected descending importe order, got %v first", items[0].ImportePedido)
	}

	// Columns outside the whitelist fall back to the default order.
	if _, _, err := svc.List(ctx, 1, 20, map[string]string{
		"sort_by": "importe_pedido; DROP TABLE pedidos",
	}); err != nil {
		t.Fatalf("List with unknown sort column failed: %v", err)
	}
}

func TestPedidoMarkReceivedStampsAcceptance(t *testing.T) {
	svc, _ := setupPedidoTest(t)
	ctx := context.Background()

	pedido, err := svc.Create(ctx, PedidoInput{
		Tipo:         "material",
		Cantidad:     1,
		PrecioUnidad: 4,
		Days:         7,
	}, "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if pedido.Aceptado != nil {
		t.Fatalf("Expected no acceptance on create, got %v", pedido.Aceptado)
	}

	received, err := svc.MarkReceived(ctx, pedido.ID)
	if err != nil {
		t.Fatalf("MarkReceived failed: %v", err)
	}
	if !received.Recibido {
		t.Error("Expected recibido true")
	}
	if received.Aceptado == nil {
		t.Fatal("Expected acceptance stamped")
	}
	if received.DateReceiving == nil {
		t.Fatal("Expected receiving date derived from stamped acceptance")
	}
	wantDay := received.Aceptado.AddDate(0, 0, 7)
	if received.DateReceiving.Sub(wantDay) > time.Second || wantDay.Sub(*received.DateReceiving) > time.Second {
		t.Errorf("Expected receiving date %v, got %v", wantDay, received.DateReceiving)
	}

	// Marking again keeps the original acceptance.
	again, err := svc.MarkReceived(ctx, pedido.ID)
	if err != nil {
		t.Fatalf("second MarkReceived failed: %v", err)
	}
	if !again.Aceptado.Equal(*received.Aceptado) {
		t.Errorf("Expected acceptance unchanged, got %v then %v", received.Aceptado, again.Aceptado)
	}
}
