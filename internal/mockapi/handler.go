package mockapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"shortlinks/internal/logger"
	"shortlinks/internal/model"
)

const aliasIDLength = 8

// Handler is an in-memory stand-in for the shortening service, implementing
// the same alias contract the real deployment serves. State lives for the
// process lifetime only.
type Handler struct {
	mu      sync.RWMutex
	aliases map[string]model.AliasResponse
}

// NewHandler creates an empty mock service.
func NewHandler() *Handler {
	return &Handler{
		aliases: make(map[string]model.AliasResponse),
	}
}

// RegisterRoutes wires the alias endpoints onto a chi router.
func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)

	r.Post("/alias", h.handleCreateAlias)
	r.Get("/alias/{id}", h.handleGetAlias)

	return r
}

func (h *Handler) handleCreateAlias(w http.ResponseWriter, r *http.Request) {
	var req model.AliasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	id, err := generateAliasID(aliasIDLength)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not generate alias")
		return
	}

	resp := model.AliasResponse{
		Alias: id,
		Links: model.AliasLinks{
			Self:  req.URL,
			Short: shortURLFor(r, id),
		},
	}

	h.mu.Lock()
	h.aliases[id] = resp
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleGetAlias(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.RLock()
	resp, found := h.aliases[id]
	h.mu.RUnlock()

	if !found {
		writeError(w, http.StatusNotFound, "alias not found")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// shortURLFor builds the short URL the way the hosted service does, from
// the address the request came in on.
func shortURLFor(r *http.Request, id string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/" + id
}

type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Message: msg})
}
