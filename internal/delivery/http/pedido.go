package http

import (
	"fmt"
	"net/http"

	"github.com/omg-lab/omg-backend/internal/auth"
	"github.com/omg-lab/omg-backend/internal/entity"
)

func (h *Handler) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req entity.PedidoChangeStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var usuarioNome, usuarioEmail string
	if id, ok := auth.FromContext(r.Context()); ok {
		usuarioNome = id.Nome
		usuarioEmail = id.Email
	}

	if err := h.pedidoSvc.ChangeStatus(r.Context(), req.IdPedido, req.NewStatus, usuarioNome, usuarioEmail); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetPedido(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid pedido id", http.StatusBadRequest)
		return
	}

	pedido, err := h.pedidoSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pedido)
}

func (h *Handler) handleNewPedido(w http.ResponseWriter, r *http.Request) {
	var req entity.NewPedidoRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	pedido, err := h.pedidoSvc.CreateNewPedido(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/Pedido/%d", pedido.ID))
	writeJSON(w, http.StatusCreated, pedido)
}

func (h *Handler) handlePedidoEvents(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid pedido id", http.StatusBadRequest)
		return
	}

	events, err := h.pedidoSvc.GetStatusHistory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if events == nil {
		events = []entity.EventChangeStatus{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) handlePedidoCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.pedidoSvc.GetPedidoCards(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *Handler) handlePedidoModal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid pedido id", http.StatusBadRequest)
		return
	}

	modal, err := h.pedidoSvc.GetPedidoModal(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, modal)
}
