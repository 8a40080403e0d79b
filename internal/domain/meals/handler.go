package meals

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/ai/meals/generate", generateHandler(svc))
	r.Get("/meals", listMealsHandler(svc))
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func generateHandler(svc *Service) http.HandlerFunc {
	// Sin body: todo sale del store.
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.Generate(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{OK: false, Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}

func listMealsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{OK: false, Error: err.Error()})
			return
		}
		if items == nil {
			items = []Record{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
