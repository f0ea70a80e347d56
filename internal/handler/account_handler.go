package handler

import (
	"net/http"

	"storefront/internal/service"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	_, err := h.svc.Accounts.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err, "Registration failed.")
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Success: true, Message: "User registered successfully!"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}
	// Missing credentials fail the same way as wrong ones.
	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, r, service.ErrInvalidCredentials, "Login failed.")
		return
	}

	user, err := h.svc.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err, "Login failed.")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success:  true,
		Message:  "Login successful!",
		UserID:   user.ID,
		Username: user.Username,
	})
}
