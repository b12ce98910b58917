package usecase

import (
	"github.com/RaGnaRoK-thor/invsys/internal/application/dto"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/entity"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor nuevo. Propaga ErrDuplicate si el nombre ya existe.
func (uc *SupplierUseCase) Create(in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Update reescribe todos los campos del proveedor id. Propaga ErrNotFound si
// ninguna fila fue afectada y ErrDuplicate ante conflicto de nombre.
func (uc *SupplierUseCase) Update(id int64, in dto.SupplierRequest) error {
	supplier := &entity.Supplier{
		ID:            id,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
	}
	return uc.repo.Update(supplier)
}

// Delete elimina el proveedor id; los productos que lo referencian quedan
// desvinculados, no se borran.
func (uc *SupplierUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
	}
}
