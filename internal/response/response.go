package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON writes body as JSON with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(body)
}

// WriteError writes an error response
func WriteError(w http.ResponseWriter, statusCode int, detail string) error {
	return WriteJSON(w, statusCode, ErrorResponse{Detail: detail})
}

// WriteOK writes a 200 response
func WriteOK(w http.ResponseWriter, body interface{}) error {
	return WriteJSON(w, http.StatusOK, body)
}

// WriteBadRequest writes a 400 Bad Request error
func WriteBadRequest(w http.ResponseWriter, detail string) error {
	return WriteError(w, http.StatusBadRequest, detail)
}

// WriteUnprocessable writes a 422 Unprocessable Entity error
func WriteUnprocessable(w http.ResponseWriter, detail string) error {
	return WriteError(w, http.StatusUnprocessableEntity, detail)
}

// WriteInternalError writes a 500 Internal Server Error
func WriteInternalError(w http.ResponseWriter, detail string) error {
	return WriteError(w, http.StatusInternalServerError, detail)
}
