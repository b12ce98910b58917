package dto

// ErrorResponse cuerpo de error HTTP. Message siempre presente en respuestas no-2xx.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de éxito para operaciones sin payload propio.
type MessageResponse struct {
	Message string `json:"message"`
}
