package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/tanakrit-dev/userbase-be/internal/http/respond"
	"github.com/tanakrit-dev/userbase-be/internal/models/dto"
	"github.com/tanakrit-dev/userbase-be/internal/service"
	"github.com/tanakrit-dev/userbase-be/internal/storage"
)

// UserHandler translates the /users HTTP surface to service calls and
// service outcomes back to status codes and JSON bodies. No business logic
// lives here.
type UserHandler struct {
	users *service.UserService
	log   zerolog.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(users *service.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Register attaches the user routes to the router.
func (h *UserHandler) Register(r chi.Router) {
	r.Get("/users", h.list)
	r.Post("/users", h.create)
	r.Get("/users/{id}", h.get)
	r.Put("/users/{id}", h.update)
	r.Delete("/users/{id}", h.delete)
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users")
		respond.Error(w, http.StatusInternalServerError, "Query failed")
		return
	}
	respond.JSON(w, http.StatusOK, users)
}

func (h *UserHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Message(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("get user")
		respond.Error(w, http.StatusInternalServerError, "Query failed")
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	created, err := h.users.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordRequired) {
			respond.Error(w, http.StatusBadRequest, "Password is required")
			return
		}
		h.log.Error().Err(err).Msg("create user")
		respond.Error(w, http.StatusInternalServerError, "Insert failed")
		return
	}
	respond.JSON(w, http.StatusCreated, dto.CreateUserResponse{
		ID:        created.ID,
		Firstname: created.Firstname,
		Fullname:  created.Fullname,
		Lastname:  created.Lastname,
		Username:  created.Username,
		Status:    created.Status,
	})
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if _, err := h.users.Update(r.Context(), id, req); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Message(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("update user")
		respond.Error(w, http.StatusInternalServerError, "Update failed")
		return
	}
	respond.Message(w, http.StatusOK, "User updated successfully")
}

func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Message(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("delete user")
		respond.Error(w, http.StatusInternalServerError, "Delete failed")
		return
	}
	respond.Message(w, http.StatusOK, fmt.Sprintf("User %d deleted successfully", id))
}

// userID parses the {id} path parameter, writing a 400 on malformed input.
func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return id, true
}
