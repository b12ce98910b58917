package repository

import "github.com/RaGnaRoK-thor/invsys/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Update y Delete devuelven ErrNotFound cuando ninguna fila fue afectada.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id int64) error
}
