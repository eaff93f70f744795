package dto

// ErrorResponse cuerpo de error HTTP. Message llega tal cual al cliente.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
