package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/RaGnaRoK-thor/invsys/internal/domain"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/entity"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre SQLite.
type SupplierRepo struct {
	db *sql.DB
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(db *sql.DB) *SupplierRepo {
	return &SupplierRepo{db: db}
}

// Create persiste un proveedor nuevo. Devuelve ErrDuplicate si el nombre ya existe.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	res, err := r.db.Exec(
		`INSERT INTO suppliers (name, contact_person, phone, email) VALUES (?, ?, ?, ?)`,
		supplier.Name, supplier.ContactPerson, supplier.Phone, supplier.Email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id supplier: %w", err)
	}
	supplier.ID = id
	return nil
}

// List devuelve todos los proveedores.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	rows, err := r.db.Query(`SELECT id, name, contact_person, phone, email FROM suppliers`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Phone, &s.Email); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reescribe todos los campos del proveedor. Siempre emite el UPDATE y
// decide por filas afectadas: cero filas equivale a ErrNotFound (sin pre-check,
// evita la carrera leer-luego-escribir).
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	res, err := r.db.Exec(
		`UPDATE suppliers SET name = ?, contact_person = ?, phone = ?, email = ? WHERE id = ?`,
		supplier.Name, supplier.ContactPerson, supplier.Phone, supplier.Email, supplier.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected supplier: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor por ID. Los productos que lo referencian quedan
// con supplier_id en NULL (ON DELETE SET NULL), no se borran.
func (r *SupplierRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected supplier: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
