package usecase

import (
	"github.com/RaGnaRoK-thor/invsys/internal/application/dto"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/entity"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Recibe requests ya
// normalizados por el handler (defaults aplicados y rangos validados).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. Propaga ErrDuplicate si el nombre ya existe.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	product := toProductEntity(0, in)
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return &dto.ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		CurrencyCode: product.CurrencyCode,
		Stock:        product.Stock,
		SafeStock:    product.SafeStock,
		CategoryID:   product.CategoryID,
		SupplierID:   product.SupplierID,
		NeedsRestock: product.NeedsRestock(),
	}, nil
}

// List devuelve todos los productos con nombres de categoría y proveedor
// resueltos (null cuando el producto no referencia ninguno).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price,
			CurrencyCode: p.CurrencyCode,
			Stock:        p.Stock,
			SafeStock:    p.SafeStock,
			CategoryID:   p.CategoryID,
			SupplierID:   p.SupplierID,
			CategoryName: p.CategoryName,
			SupplierName: p.SupplierName,
			NeedsRestock: p.NeedsRestock(),
		})
	}
	return items, nil
}

// Update reescribe todos los campos del producto id. Propaga ErrNotFound si
// ninguna fila fue afectada y ErrDuplicate ante conflicto de nombre.
func (uc *ProductUseCase) Update(id int64, in dto.ProductRequest) error {
	return uc.repo.Update(toProductEntity(id, in))
}

// Delete elimina el producto id.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// toProductEntity asume el request normalizado: Price, CurrencyCode, Stock y
// SafeStock no son nil después de defaults + validación en el handler.
func toProductEntity(id int64, in dto.ProductRequest) *entity.Product {
	return &entity.Product{
		ID:           id,
		Name:         in.Name,
		Description:  in.Description,
		Price:        *in.Price,
		CurrencyCode: *in.CurrencyCode,
		Stock:        *in.Stock,
		SafeStock:    *in.SafeStock,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
	}
}
