package service

import (
	"github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services bundles the inventory-side services for handler wiring.
type Services struct {
	Material   *MaterialService
	Machine    *MachineService
	Allocation *AllocationService
	Pedido     *PedidoService
	Call       *CallService
	Export     *ExportService
	Master     *MasterService
}

func NewServices(repos *repository.Repositories, db *gorm.DB, logger *zap.Logger) *Services {
	return &Services{
		Material:   NewMaterialService(repos.Material, db),
		Machine:    NewMachineService(repos.Machine, db),
		Allocation: NewAllocationService(repos.Material, repos.Machine, db),
		Pedido:     NewPedidoService(repos.Pedido),
		Call:       NewCallService(repos.Call, logger),
		Export:     NewExportService(repos.Pedido, repos.Material, repos.Call),
		Master:     NewMasterService(repos.Master),
	}
}
