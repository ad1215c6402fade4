package handler

import (
	"encoding/json"
	"net/http"

	"folio/internal/auth"
)

type AuthHandler struct {
	PasswordHash string
	Session      *auth.Session
}

type loginReq struct {
	Password string `json:"password"`
}

// Login checks the shared admin password and hands out a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.Password == "" || !auth.CheckPassword(h.PasswordHash, req.Password) {
		fail(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token, err := h.Session.Sign()
	if err != nil {
		serverError(w, "auth", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}

// Check lets the admin UI confirm its stored token is still good.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
