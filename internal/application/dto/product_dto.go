package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o reescribir un producto. Los campos con
// puntero distinguen "omitido" de "valor cero": currency_code y safe_stock
// reciben su valor por defecto antes de validar, de modo que omitirlos nunca
// dispara "campo requerido", solo las comprobaciones de rango.
type ProductRequest struct {
	Name         string           `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	CurrencyCode *string          `json:"currency_code"`
	Stock        *int64           `json:"stock"`
	SafeStock    *int64           `json:"safe_stock"`
	CategoryID   *int64           `json:"category_id"`
	SupplierID   *int64           `json:"supplier_id"`
}

// ProductResponse salida de un producto con los nombres de categoría y
// proveedor resueltos (null si el producto no referencia ninguno).
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CurrencyCode string          `json:"currency_code"`
	Stock        int64           `json:"stock"`
	SafeStock    int64           `json:"safe_stock"`
	CategoryID   *int64          `json:"category_id"`
	SupplierID   *int64          `json:"supplier_id"`
	CategoryName *string         `json:"category_name"`
	SupplierName *string         `json:"supplier_name"`
	NeedsRestock bool            `json:"needs_restock"`
}
