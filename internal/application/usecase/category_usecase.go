package usecase

import (
	"github.com/RaGnaRoK-thor/invsys/internal/application/dto"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/entity"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría nueva. Propaga ErrDuplicate si el nombre ya existe.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update reescribe todos los campos de la categoría id.
func (uc *CategoryUseCase) Update(id int64, in dto.CategoryRequest) error {
	category := &entity.Category{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
	}
	return uc.repo.Update(category)
}

// Delete elimina la categoría id; los productos que la referencian quedan
// desvinculados, no se borran.
func (uc *CategoryUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
