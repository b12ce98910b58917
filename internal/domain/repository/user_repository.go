package repository

import "github.com/RaGnaRoK-thor/invsys/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByEmployeeID(employeeID string) (*entity.User, error)
}
