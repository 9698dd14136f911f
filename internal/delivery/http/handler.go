package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/omg-lab/omg-backend/internal/auth"
	"github.com/omg-lab/omg-backend/internal/repository"
	"github.com/omg-lab/omg-backend/internal/service"
)

// Handler handles HTTP requests for the application.
type Handler struct {
	pedidoSvc   *service.PedidoService
	authSvc     *service.AuthService
	tokens      *auth.TokenManager
	clienteRepo repository.ClienteRepository
	catalogRepo repository.CatalogRepository
}

func NewHandler(
	pedidoSvc *service.PedidoService,
	authSvc *service.AuthService,
	tokens *auth.TokenManager,
	clienteRepo repository.ClienteRepository,
	catalogRepo repository.CatalogRepository,
) *Handler {
	return &Handler{
		pedidoSvc:   pedidoSvc,
		authSvc:     authSvc,
		tokens:      tokens,
		clienteRepo: clienteRepo,
		catalogRepo: catalogRepo,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Pedido routes take the caller identity when present but do not
	// require it; it only attributes audit events.
	mux.Handle("PUT /api/Pedido/ChangeStatus", h.tokens.Optional(http.HandlerFunc(h.handleChangeStatus)))
	mux.Handle("POST /api/Pedido", h.tokens.Optional(http.HandlerFunc(h.handleNewPedido)))
	mux.HandleFunc("GET /api/Pedido/{id}", h.handleGetPedido)
	mux.HandleFunc("GET /api/Pedido/{id}/events", h.handlePedidoEvents)

	mux.Handle("GET /api/View/Pedido/Card", h.tokens.Require(http.HandlerFunc(h.handlePedidoCards)))
	mux.Handle("GET /api/View/Pedido/Modal/{id}", h.tokens.Require(http.HandlerFunc(h.handlePedidoModal)))

	h.registerClienteRoutes(mux)
	h.registerCatalogRoutes(mux)
	h.registerAuthRoutes(mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "err", err)
	}
}

// writeError maps repository.ErrNotFound to 404 and everything else to
// a generic 500, logging the underlying cause.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	slog.Error("Request failed", "err", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
