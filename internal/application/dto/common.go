package dto

// ErrorResponse cuerpo de error HTTP. Details lleva el mensaje del error subyacente en fallos de base de datos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// MessageResponse respuesta simple con mensaje y, opcionalmente, a dónde redirigir el frontend.
type MessageResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}
