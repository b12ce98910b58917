package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/RaGnaRoK-thor/invsys/internal/domain"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/entity"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un producto nuevo. Devuelve ErrDuplicate si el nombre ya existe.
func (r *ProductRepo) Create(product *entity.Product) error {
	res, err := r.db.Exec(
		`INSERT INTO products (name, description, price, currency_code, stock, safe_stock, category_id, supplier_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		product.Name, product.Description, product.Price.InexactFloat64(), product.CurrencyCode,
		product.Stock, product.SafeStock, product.CategoryID, product.SupplierID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id product: %w", err)
	}
	product.ID = id
	return nil
}

// List devuelve todos los productos con los nombres de categoría y proveedor
// resueltos vía LEFT JOIN: una referencia ausente produce NULL, nunca un error.
func (r *ProductRepo) List() ([]*entity.ProductWithRelations, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.currency_code, p.stock, p.safe_stock,
		       p.category_id, p.supplier_id, c.name AS category_name, s.name AS supplier_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN suppliers s ON p.supplier_id = s.id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithRelations
	for rows.Next() {
		var p entity.ProductWithRelations
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.CurrencyCode, &p.Stock, &p.SafeStock,
			&p.CategoryID, &p.SupplierID, &p.CategoryName, &p.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update reescribe todos los campos del producto. Siempre emite el UPDATE y
// decide por filas afectadas: cero filas equivale a ErrNotFound.
func (r *ProductRepo) Update(product *entity.Product) error {
	res, err := r.db.Exec(
		`UPDATE products SET name = ?, description = ?, price = ?, currency_code = ?,
		 stock = ?, safe_stock = ?, category_id = ?, supplier_id = ? WHERE id = ?`,
		product.Name, product.Description, product.Price.InexactFloat64(), product.CurrencyCode,
		product.Stock, product.SafeStock, product.CategoryID, product.SupplierID, product.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected product: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. Cero filas afectadas equivale a ErrNotFound.
func (r *ProductRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected product: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
