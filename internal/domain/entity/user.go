package entity

// User representa un empleado que puede autenticarse en el sistema.
// EmployeeID es el identificador de login (único); ID es la clave subrogada.
type User struct {
	ID           int64
	EmployeeID   string
	PasswordHash string // bcrypt hash, nunca en texto plano después de persistir
}
