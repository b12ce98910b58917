package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard_summary.
// Cinco conteos recalculados por completo en cada llamada (sin caché).
type DashboardSummaryDTO struct {
	TotalEmployees         int64 `json:"total_employees"`
	TotalCategories        int64 `json:"total_categories"`
	TotalSuppliers         int64 `json:"total_suppliers"`
	TotalProducts          int64 `json:"total_products"`
	ProductsNeedingRestock int64 `json:"products_needing_restock"`
}
