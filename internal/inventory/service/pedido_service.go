package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"github.com/google/uuid"
)

// PedidoService manages purchase orders. Derived pricing runs in the
// entity's BeforeSave hook, so every write path recomputes it.
type PedidoService struct {
	pedidoRepo *repository.PedidoRepository
}

func NewPedidoService(pedidoRepo *repository.PedidoRepository) *PedidoService {
	return &PedidoService{pedidoRepo: pedidoRepo}
}

// PedidoInput carries the writable pedido columns; importe_pedido,
// date_receiving and provider fields are derived, not accepted.
type PedidoInput struct {
	Tipo          string     `json:"tipo"`
	ReferenciaID  *string    `json:"referencia_id"`
	SolicitanteID *string    `json:"solicitante_id"`
	TableStatusID *string    `json:"table_status_id"`
	Descripcion   string     `json:"descripcion"`
	Cantidad      float64    `json:"cantidad"`
	PrecioUnidad  float64    `json:"precio_unidad"`
	Aceptado      *time.Time `json:"aceptado"`
	Days          int        `json:"days"`
	Recibido      bool       `json:"recibido"`
	Comments      string     `json:"comments"`
}

func (s *PedidoService) Create(ctx context.Context, input PedidoInput, createdBy string) (*entity.Pedido, error) {
	pedido := &entity.Pedido{
		ID:            uuid.New().String(),
		Tipo:          input.Tipo,
		ReferenciaID:  input.ReferenciaID,
		SolicitanteID: input.SolicitanteID,
		TableStatusID: input.TableStatusID,
		Descripcion:   input.Descripcion,
		Cantidad:      input.Cantidad,
		PrecioUnidad:  input.PrecioUnidad,
		Aceptado:      input.Aceptado,
		Days:          input.Days,
		Recibido:      input.Recibido,
		Comments:      input.Comments,
		CreatedBy:     createdBy,
	}
	if err := s.pedidoRepo.Create(ctx, pedido); err != nil {
		return nil, fmt.Errorf("create pedido: %w", err)
	}
	return s.pedidoRepo.FindByID(ctx, pedido.ID)
}

func (s *PedidoService) Get(ctx context.Context, id string) (*entity.Pedido, error) {
	return s.pedidoRepo.FindByID(ctx, id)
}

func (s *PedidoService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Pedido, int64, error) {
	return s.pedidoRepo.FindAll(ctx, page, pageSize, filters)
}

func (s *PedidoService) Update(ctx context.Context, id string, input PedidoInput) (*entity.Pedido, error) {
	pedido, err := s.pedidoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pedido.Tipo = input.Tipo
	pedido.ReferenciaID = input.ReferenciaID
	pedido.SolicitanteID = input.SolicitanteID
	pedido.TableStatusID = input.TableStatusID
	pedido.Descripcion = input.Descripcion
	pedido.Cantidad = input.Cantidad
	pedido.PrecioUnidad = input.PrecioUnidad
	pedido.Aceptado = input.Aceptado
	pedido.Days = input.Days
	pedido.Recibido = input.Recibido
	pedido.Comments = input.Comments
	pedido.Referencia = nil
	pedido.Solicitante = nil
	pedido.TableStatus = nil

	if err := s.pedidoRepo.Update(ctx, pedido); err != nil {
		return nil, fmt.Errorf("update pedido: %w", err)
	}
	return s.pedidoRepo.FindByID(ctx, id)
}

// MarkReceived flips recibido and stamps the acceptance date when unset.
func (s *PedidoService) MarkReceived(ctx context.Context, id string) (*entity.Pedido, error) {
	pedido, err := s.pedidoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pedido.Recibido = true
	if pedido.Aceptado == nil {
		now := time.Now()
		pedido.Aceptado = &now
	}
	pedido.Referencia = nil
	pedido.Solicitante = nil
	pedido.TableStatus = nil

	if err := s.pedidoRepo.Update(ctx, pedido); err != nil {
		return nil, fmt.Errorf("mark pedido received: %w", err)
	}
	return s.pedidoRepo.FindByID(ctx, id)
}

func (s *PedidoService) Delete(ctx context.Context, id string) error {
	if _, err := s.pedidoRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.pedidoRepo.Delete(ctx, id)
}
