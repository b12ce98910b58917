package repository

import "context"

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountSuppliers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	// CountProductsNeedingRestock cuenta productos con stock < safe_stock*0.5.
	// Filas con safe_stock = 0 quedan excluidas por el guard safe_stock > 0.
	CountProductsNeedingRestock(ctx context.Context) (int64, error)
}
