package status

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/ai/ask", askHandler(svc))
	r.Get("/ai/snapshot", snapshotHandler(svc))
}

type askRequest struct {
	// RawMessage para aceptar también números u otros escalares (se usa su texto).
	Question json.RawMessage `json:"question"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func askHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		question, err := decodeQuestion(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		ans, err := svc.Ask(r.Context(), question)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, ans)
	}
}

func snapshotHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// decodeQuestion: body vacío o sin "question" => "" (intent summary).
func decodeQuestion(body io.Reader) (string, error) {
	if body == nil {
		return "", nil
	}
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return "", err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", nil
	}

	var req askRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return "", err
	}

	q := bytes.TrimSpace(req.Question)
	if len(q) == 0 || string(q) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(q, &s); err == nil {
		return s, nil
	}
	return strings.TrimSpace(string(q)), nil
}

// writeJSON está duplicado en cada módulo, igual que en profiles/meals.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
