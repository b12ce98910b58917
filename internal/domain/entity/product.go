package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario.
// CategoryID y SupplierID son claves foráneas opcionales: al borrar la categoría o el
// proveedor referenciado quedan en NULL (el producto no se borra en cascada).
type Product struct {
	ID           int64
	Name         string
	Description  *string
	Price        decimal.Decimal // precio de venta, nunca negativo
	CurrencyCode string          // por defecto "USD"
	Stock        int64
	SafeStock    int64 // umbral de reposición, por defecto 100
	CategoryID   *int64
	SupplierID   *int64
}

// NeedsRestock indica si el stock actual está por debajo de la mitad del stock seguro.
// Un SafeStock de 0 nunca dispara reposición.
func (p Product) NeedsRestock() bool {
	return p.SafeStock > 0 && float64(p.Stock) < float64(p.SafeStock)*0.5
}

// ProductWithRelations es la proyección de lectura de un producto junto con los
// nombres de su categoría y proveedor (LEFT JOIN; nil si no hay referencia).
type ProductWithRelations struct {
	Product
	CategoryName *string
	SupplierName *string
}
