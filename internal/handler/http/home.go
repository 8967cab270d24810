package http

import (
	"net/http"

	"github.com/patas-felizes/backend/internal/utils"
)

// home handles GET /, the public welcome endpoint.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"message": "Bem-vindo(a) ao backend do Patas Felizes! Leia a documentação em /apidocs.",
	}, http.StatusOK)
}
