package httpapi

import (
	"errors"
	"net/http"

	"facility-monitor/internal/service"

	"go.uber.org/zap"
)

// AuthHandler login, registration and logout.
type AuthHandler struct {
	auth     service.AuthService
	sessions *Sessions
	logger   *zap.Logger
}

func NewAuthHandler(auth service.AuthService, sessions *Sessions, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, logger: logger}
}

type authPage struct {
	Error string
}

// Login GET renders the form; POST authenticates. Failures re-render
// the form with a generic message that never hints whether the
// username exists.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		render(w, http.StatusOK, "login.html", authPage{})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		p, err := h.auth.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				render(w, http.StatusOK, "login.html", authPage{Error: "Incorrect username or password"})
				return
			}
			h.logger.Error("Login failed", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if err := h.sessions.Create(r.Context(), w, p); err != nil {
			h.logger.Error("Failed to create session", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/main/", http.StatusFound)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Register GET renders the form; POST creates a non-superuser account
// and redirects to login.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		render(w, http.StatusOK, "register.html", authPage{})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		req := service.RegisterRequest{
			Username:  r.PostFormValue("username"),
			Email:     r.PostFormValue("email"),
			Password1: r.PostFormValue("password1"),
			Password2: r.PostFormValue("password2"),
		}
		if err := h.auth.Register(r.Context(), req); err != nil {
			var msg string
			switch {
			case errors.Is(err, service.ErrPasswordMismatch):
				msg = "Passwords do not match"
			case errors.Is(err, service.ErrUsernameTaken):
				msg = "Username already exists"
			case errors.Is(err, service.ErrMissingFields):
				msg = "All required fields must be filled in"
			default:
				h.logger.Error("Registration failed", zap.Error(err))
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			render(w, http.StatusOK, "register.html", authPage{Error: msg})
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Logout destroys the session and redirects to login.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(r.Context(), w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}
