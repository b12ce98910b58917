package dto

// RegisterRequest entrada para registro: employee_id + password con confirmación.
type RegisterRequest struct {
	EmployeeID      string `json:"employee_id"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}
