package entity

// Supplier representa un proveedor. Name es único; el resto de campos son opcionales
// (NULL en la base de datos, por eso punteros).
type Supplier struct {
	ID            int64
	Name          string
	ContactPerson *string
	Phone         *string
	Email         *string
}
