package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService renders pedido, material and call listings as CSV or
// XLSX for the admin frontend's download buttons.
type ExportService struct {
	pedidoRepo   *repository.PedidoRepository
	materialRepo *repository.MaterialRepository
	callRepo     *repository.CallRepository
}

func NewExportService(pedidoRepo *repository.PedidoRepository, materialRepo *repository.MaterialRepository, callRepo *repository.CallRepository) *ExportService {
	return &ExportService{pedidoRepo: pedidoRepo, materialRepo: materialRepo, callRepo: callRepo}
}

var pedidoExportHeader = []string{
	"Tipo", "Referencia", "Descripcion", "Proveedor", "Solicitante",
	"Cantidad", "Precio Unidad", "Importe Pedido",
	"Aceptado", "Days", "Date Receiving", "Recibido", "Comments",
}

func pedidoExportRow(p *entity.Pedido) []string {
	referencia := ""
	if p.Referencia != nil {
		referencia = p.Referencia.Reference
	}
	solicitante := ""
	if p.Solicitante != nil {
		solicitante = p.Solicitante.Name
	}
	return []string{
		p.Tipo,
		referencia,
		p.Descripcion,
		p.Proveedor,
		solicitante,
		strconv.FormatFloat(p.Cantidad, 'f', 2, 64),
		strconv.FormatFloat(p.PrecioUnidad, 'f', 4, 64),
		strconv.FormatFloat(p.ImportePedido, 'f', 2, 64),
		formatDate(p.Aceptado),
		strconv.Itoa(p.Days),
		formatDate(p.DateReceiving),
		strconv.FormatBool(p.Recibido),
		p.Comments,
	}
}

// PedidosCSV renders the filtered pedido list as CSV.
func (s *ExportService) PedidosCSV(ctx context.Context, filters map[string]string) ([]byte, error) {
	pedidos, err := s.pedidoRepo.FindAllForExport(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("load pedidos: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(pedidoExportHeader); err != nil {
		return nil, err
	}
	for i := range pedidos {
		if err := w.Write(pedidoExportRow(&pedidos[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PedidosXLSX renders the filtered pedido list as a single-sheet
// workbook.
func (s *ExportService) PedidosXLSX(ctx context.Context, filters map[string]string) ([]byte, error) {
	pedidos, err := s.pedidoRepo.FindAllForExport(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("load pedidos: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Pedidos"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range pedidoExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row := range pedidos {
		for col, value := range pedidoExportRow(&pedidos[row]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

var materialExportHeader = []string{
	"Reference", "Description", "Manufacturer", "Supplier", "Location", "Category",
	"Current Stock", "Minimum Stock", "Order Lot", "Price", "Critical", "Consumable",
}

func materialExportRow(m *entity.Material) []string {
	supplier := ""
	if m.Supplier != nil {
		supplier = m.Supplier.Name
	}
	location := ""
	if m.Location != nil {
		location = m.Location.Name
	}
	category := ""
	if m.Category != nil {
		category = m.Category.Name
	}
	return []string{
		m.Reference,
		m.Description,
		m.Manufacturer,
		supplier,
		location,
		category,
		strconv.FormatFloat(m.CurrentStock, 'f', 2, 64),
		strconv.FormatFloat(m.MinimumStock, 'f', 2, 64),
		strconv.FormatFloat(m.OrderLot, 'f', 2, 64),
		strconv.FormatFloat(m.Price, 'f', 4, 64),
		strconv.FormatBool(m.Critical),
		strconv.FormatBool(m.Consumable),
	}
}

// MaterialsCSV renders the full material list as CSV.
func (s *ExportService) MaterialsCSV(ctx context.Context, filters map[string]string) ([]byte, error) {
	// Large page size stands in for "everything"; the admin export is a
	// bounded dataset.
	materials, _, err := s.materialRepo.FindAll(ctx, 1, 10000, filters)
	if err != nil {
		return nil, fmt.Errorf("load materials: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(materialExportHeader); err != nil {
		return nil, err
	}
	for i := range materials {
		if err := w.Write(materialExportRow(&materials[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MaterialsXLSX renders the full material list as a workbook.
func (s *ExportService) MaterialsXLSX(ctx context.Context, filters map[string]string) ([]byte, error) {
	materials, _, err := s.materialRepo.FindAll(ctx, 1, 10000, filters)
	if err != nil {
		return nil, fmt.Errorf("load materials: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Materials"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range materialExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row := range materials {
		for col, value := range materialExportRow(&materials[row]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

var callExportHeader = []string{
	"Machine", "Material", "Quantity", "Status",
	"Duration (min)", "Created", "Completed", "Completed By",
}

func callExportRow(c *entity.Call) []string {
	machine := ""
	if c.Machine != nil {
		machine = c.Machine.Name
	}
	material := ""
	if c.Material != nil {
		material = c.Material.Reference
	}
	created := c.CreatedAt
	return []string{
		machine,
		material,
		strconv.FormatFloat(c.Quantity, 'f', 2, 64),
		c.Status,
		strconv.Itoa(c.Duration),
		formatDate(&created),
		formatDate(c.CompletedAt),
		c.CompletedBy,
	}
}

// CallsCSV renders the call log, optionally filtered by status, as CSV.
func (s *ExportService) CallsCSV(ctx context.Context, status string) ([]byte, error) {
	calls, err := s.callRepo.FindAllForExport(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("load calls: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(callExportHeader); err != nil {
		return nil, err
	}
	for i := range calls {
		if err := w.Write(callExportRow(&calls[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CallsXLSX renders the call log as a single-sheet workbook.
func (s *ExportService) CallsXLSX(ctx context.Context, status string) ([]byte, error) {
	calls, err := s.callRepo.FindAllForExport(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("load calls: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Calls"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range callExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row := range calls {
		for col, value := range callExportRow(&calls[row]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
