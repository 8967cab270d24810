package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code and a "Content-Type: application/json" header.
//
// If marshaling fails it responds with 500 Internal Server Error and
// returns a wrapped error. Returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"mensagem": "Usuário criado com sucesso"}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteNoContent writes the given status code with an empty body.
// Used for deletions, which answer 204 without a response document.
func WriteNoContent(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}
