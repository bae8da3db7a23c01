package entity

import (
	"testing"
	"time"
)

func TestPedidoComputeDerived(t *testing.T) {
	p := &Pedido{Cantidad: 3, PrecioUnidad: 9.5}
	p.ComputeDerived()
	if p.ImportePedido != 28.5 {
		t.Errorf("Expected importe 28.5, got %v", p.ImportePedido)
	}
	if p.DateReceiving != nil {
		t.Errorf("Expected no receiving date without acceptance, got %v", p.DateReceiving)
	}

	aceptado := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.Aceptado = &aceptado
	p.Days = 14
	p.ComputeDerived()
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if p.DateReceiving == nil || !p.DateReceiving.Equal(want) {
		t.Errorf("Expected receiving date %v, got %v", want, p.DateReceiving)
	}

	// Clearing the acceptance clears the derived date.
	p.Aceptado = nil
	p.ComputeDerived()
	if p.DateReceiving != nil {
		t.Errorf("Expected receiving date cleared, got %v", p.DateReceiving)
	}
}

func TestPedidoApplyMaterial(t *testing.T) {
	m := &Material{
		Description: "PP granulate",
		Price:       9.5,
		Supplier:    &Supplier{Name: "Resinex"},
	}

	p := &Pedido{}
	p.ApplyMaterial(m)
	if p.PrecioUnidad != 9.5 {
		t.Errorf("Expected price copied from material, got %v", p.PrecioUnidad)
	}
	if p.Proveedor != "Resinex" {
		t.Errorf("Expected proveedor 'Resinex', got %v", p.Proveedor)
	}
	if p.DescripcionProveedor != "PP granulate" {
		t.Errorf("Expected provider description copied, got %v", p.DescripcionProveedor)
	}

	// An explicit unit price wins over the material price.
	p2 := &Pedido{PrecioUnidad: 11}
	p2.ApplyMaterial(m)
	if p2.PrecioUnidad != 11 {
		t.Errorf("Expected explicit price kept, got %v", p2.PrecioUnidad)
	}

	// A nil material is a no-op.
	p3 := &Pedido{}
	p3.ApplyMaterial(nil)
	if p3.PrecioUnidad != 0 {
		t.Errorf("Expected untouched pedido, got %v", p3.PrecioUnidad)
	}
}
