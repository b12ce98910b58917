package entity

// Category representa una categoría de productos. Name es único.
type Category struct {
	ID          int64
	Name        string
	Description *string
}
