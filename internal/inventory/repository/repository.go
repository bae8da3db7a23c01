package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound wraps gorm's record-not-found for the inventory side.
var ErrNotFound = errors.New("record not found")

// Repositories bundles the inventory-side repositories.
type Repositories struct {
	Material *MaterialRepository
	Machine  *MachineRepository
	Pedido   *PedidoRepository
	Call     *CallRepository
	Master   *MasterRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Material: NewMaterialRepository(db),
		Machine:  NewMachineRepository(db),
		Pedido:   NewPedidoRepository(db),
		Call:     NewCallRepository(db),
		Master:   NewMasterRepository(db),
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// orderClause builds an ORDER BY from the sort_by/sort_order query
// parameters. Columns outside the whitelist fall back to the default,
// so user input never reaches the SQL text.
func orderClause(allowed map[string]string, sortBy, sortOrder, fallback string) string {
	column, ok := allowed[sortBy]
	if !ok {
		return fallback
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}
