package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/RaGnaRoK-thor/invsys/internal/domain"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/entity"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre SQLite.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un empleado nuevo. Devuelve ErrEmployeeIDExists si el
// employee_id ya está registrado.
func (r *UserRepo) Create(user *entity.User) error {
	res, err := r.db.Exec(
		`INSERT INTO users (employee_id, password) VALUES (?, ?)`,
		user.EmployeeID, user.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeIDExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id user: %w", err)
	}
	user.ID = id
	return nil
}

// GetByEmployeeID obtiene un empleado por su identificador de login.
// Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmployeeID(employeeID string) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(
		`SELECT id, employee_id, password FROM users WHERE employee_id = ?`,
		employeeID,
	).Scan(&u.ID, &u.EmployeeID, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by employee_id: %w", err)
	}
	return &u, nil
}
