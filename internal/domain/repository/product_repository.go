package repository

import "github.com/RaGnaRoK-thor/invsys/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// List devuelve los productos con los nombres de categoría y proveedor resueltos
// vía LEFT JOIN (nil cuando no hay referencia).
type ProductRepository interface {
	Create(product *entity.Product) error
	List() ([]*entity.ProductWithRelations, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
