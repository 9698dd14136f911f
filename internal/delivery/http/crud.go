package http

import (
	"net/http"

	"github.com/omg-lab/omg-backend/internal/entity"
)

// Generic CRUD + search surface for clientes and the five catalog
// attribute kinds. DELETE soft-deletes; reads exclude deleted rows.

func (h *Handler) registerClienteRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/Cliente", h.handleListClientes)
	mux.HandleFunc("GET /api/Cliente/{id}", h.handleGetCliente)
	mux.HandleFunc("GET /api/Cliente/search/{key}", h.handleSearchClientes)
	mux.HandleFunc("POST /api/Cliente", h.handleCreateCliente)
	mux.HandleFunc("PUT /api/Cliente/{id}", h.handleUpdateCliente)
	mux.HandleFunc("DELETE /api/Cliente/{id}", h.handleDeleteCliente)
}

func (h *Handler) handleListClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.clienteRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clientes)
}

func (h *Handler) handleGetCliente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid cliente id", http.StatusBadRequest)
		return
	}
	cliente, err := h.clienteRepo.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cliente)
}

func (h *Handler) handleSearchClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.clienteRepo.Search(r.Context(), r.PathValue("key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clientes)
}

func (h *Handler) handleCreateCliente(w http.ResponseWriter, r *http.Request) {
	var cliente entity.Cliente
	if err := decodeJSON(r, &cliente); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.clienteRepo.Create(r.Context(), &cliente); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cliente)
}

func (h *Handler) handleUpdateCliente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid cliente id", http.StatusBadRequest)
		return
	}
	var cliente entity.Cliente
	if err := decodeJSON(r, &cliente); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	cliente.ID = id
	if err := h.clienteRepo.Update(r.Context(), &cliente); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cliente)
}

func (h *Handler) handleDeleteCliente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid cliente id", http.StatusBadRequest)
		return
	}
	if err := h.clienteRepo.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) registerCatalogRoutes(mux *http.ServeMux) {
	for _, kind := range entity.CatalogKinds {
		base := "/api/" + kind.String()
		mux.HandleFunc("GET "+base, h.listCatalog(kind))
		mux.HandleFunc("GET "+base+"/{id}", h.getCatalog(kind))
		mux.HandleFunc("GET "+base+"/search/{key}", h.searchCatalog(kind))
		mux.HandleFunc("POST "+base, h.createCatalog(kind))
		mux.HandleFunc("PUT "+base+"/{id}", h.updateCatalog(kind))
		mux.HandleFunc("DELETE "+base+"/{id}", h.deleteCatalog(kind))
	}
}

func (h *Handler) listCatalog(kind entity.CatalogKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.catalogRepo.FindAll(r.Context(), kind)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func (h *Handler) getCatalog(kind entity.CatalogKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		item, err := h.catalogRepo.Get(r.Context(), kind, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func (h *Handler) searchCatalog(kind entity.CatalogKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.catalogRepo.Search(r.Context(), kind, r.PathValue("key"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func (h *Handler) createCatalog(kind entity.CatalogKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item entity.CatalogItem
		if err := decodeJSON(r, &item); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := h.catalogRepo.Create(r.Context(), kind, &item); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

func (h *Handler) updateCatalog(kind entity.CatalogKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var item entity.CatalogItem
		if err := decodeJSON(r, &item); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		item.ID = id
		if err := h.catalogRepo.Update(r.Context(), kind, &item); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func (h *Handler) deleteCatalog(kind entity.CatalogKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := h.catalogRepo.Delete(r.Context(), kind, id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
