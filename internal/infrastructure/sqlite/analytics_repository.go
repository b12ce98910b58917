package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RaGnaRoK-thor/invsys/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard, sobre SQLite.
type AnalyticsRepo struct {
	db *sql.DB
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// CountUsers cuenta los empleados registrados.
func (r *AnalyticsRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountCategories cuenta las categorías.
func (r *AnalyticsRepo) CountCategories(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM categories`)
}

// CountSuppliers cuenta los proveedores.
func (r *AnalyticsRepo) CountSuppliers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM suppliers`)
}

// CountProducts cuenta los productos.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

// CountProductsNeedingRestock cuenta productos con stock por debajo de la mitad
// de su stock seguro. El guard safe_stock > 0 excluye umbrales sin configurar.
func (r *AnalyticsRepo) CountProductsNeedingRestock(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE stock < (safe_stock * 0.5) AND safe_stock > 0`)
}

func (r *AnalyticsRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
