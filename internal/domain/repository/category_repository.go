package repository

import "github.com/RaGnaRoK-thor/invsys/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) error
}
