package models

import "net/http"

// GenericResponse is the envelope for every JSON endpoint.
type GenericResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Status  int    `json:"status"`
}

// FieldErrors maps a wire field name to a human readable message.
type FieldErrors map[string]string

func SuccessResponse(message string, data any, status ...int) GenericResponse {
	res := GenericResponse{Message: message, Data: data, Status: http.StatusOK}
	if len(status) > 0 {
		res.Status = status[0]
	}
	return res
}

func ErrorResponse(status int, message string, data any) GenericResponse {
	return GenericResponse{Error: true, Message: message, Data: data, Status: status}
}
