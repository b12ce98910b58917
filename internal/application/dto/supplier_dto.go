package dto

// SupplierRequest entrada para crear o reescribir un proveedor (PUT reescribe
// todos los campos). Solo name es obligatorio.
type SupplierRequest struct {
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
}
