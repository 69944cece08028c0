package users

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Ferrum/internal/repo"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo repo.Repository
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("List users error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	u, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// UpdateRole changes a user's role. Demoting the last remaining super admin
// is refused so the back office can never lock itself out.
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	switch req.Role {
	case repo.RoleUser, repo.RoleAdmin, repo.RoleSuperAdmin:
	default:
		http.Error(w, "Unknown role", http.StatusBadRequest)
		return
	}

	target, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if target.Role == repo.RoleSuperAdmin && req.Role != repo.RoleSuperAdmin {
		n, err := h.Repo.CountSuperAdmins(r.Context())
		if err != nil {
			log.Printf("CountSuperAdmins error: %v", err)
			http.Error(w, "DB error", http.StatusInternalServerError)
			return
		}
		if n <= 1 {
			http.Error(w, "Cannot demote the last super admin", http.StatusConflict)
			return
		}
	}

	if err := h.Repo.UpdateRole(r.Context(), id, req.Role); err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Printf("UpdateRole error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a user, with the same guard: the last super admin cannot be
// deleted.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	target, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if target.Role == repo.RoleSuperAdmin {
		n, err := h.Repo.CountSuperAdmins(r.Context())
		if err != nil {
			log.Printf("CountSuperAdmins error: %v", err)
			http.Error(w, "DB error", http.StatusInternalServerError)
			return
		}
		if n <= 1 {
			http.Error(w, "Cannot delete the last super admin", http.StatusConflict)
			return
		}
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Printf("Delete user error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
