package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/RaGnaRoK-thor/invsys/internal/domain"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/entity"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre SQLite.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create persiste una categoría nueva. Devuelve ErrDuplicate si el nombre ya existe.
func (r *CategoryRepo) Create(category *entity.Category) error {
	res, err := r.db.Exec(
		`INSERT INTO categories (name, description) VALUES (?, ?)`,
		category.Name, category.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id category: %w", err)
	}
	category.ID = id
	return nil
}

// List devuelve todas las categorías.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, description FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update reescribe todos los campos de la categoría. Cero filas afectadas
// equivale a ErrNotFound.
func (r *CategoryRepo) Update(category *entity.Category) error {
	res, err := r.db.Exec(
		`UPDATE categories SET name = ?, description = ? WHERE id = ?`,
		category.Name, category.Description, category.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected category: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una categoría por ID. Los productos que la referencian quedan
// con category_id en NULL (ON DELETE SET NULL).
func (r *CategoryRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected category: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
