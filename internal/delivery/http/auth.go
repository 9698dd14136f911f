package http

import (
	"net/http"

	"github.com/omg-lab/omg-backend/internal/auth"
	"github.com/omg-lab/omg-backend/internal/entity"
)

func (h *Handler) registerAuthRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/Auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/Auth/login", h.handleLogin)
	mux.Handle("POST /api/Auth/change-password", h.tokens.Require(http.HandlerFunc(h.handleChangePassword)))
	mux.Handle("GET /api/Auth/me", h.tokens.Require(http.HandlerFunc(h.handleMe)))
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req entity.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	resp, err := h.authSvc.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	if !resp.Success {
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	resp, err := h.authSvc.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	if !resp.Success {
		writeJSON(w, http.StatusUnauthorized, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req entity.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	resp, err := h.authSvc.ChangePassword(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	if !resp.Success {
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"email":  id.Email,
		"nome":   id.Nome,
		"userId": id.UserID,
	})
}
