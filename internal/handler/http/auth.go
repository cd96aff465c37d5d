package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/strivehr/perform-backend-go/internal/handler/http/response"
	authservice "github.com/strivehr/perform-backend-go/internal/service/auth"
)

type AuthHandler struct {
	auth *authservice.Service
}

func NewAuthHandler(auth *authservice.Service) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	pair, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "username", req.Username)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, pair.RefreshCookie)
	response.Success(w, pair)
}

type portalLoginRequest struct {
	EmployeeCode string `json:"employee_code"`
	Password     string `json:"password"`
}

func (h *AuthHandler) PortalLogin(w http.ResponseWriter, r *http.Request) {
	var req portalLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	pair, err := h.auth.PortalLogin(r.Context(), req.EmployeeCode, req.Password)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, pair.RefreshCookie)
	response.Success(w, pair)
}

func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	url := h.auth.GoogleRedirectURL(r.UserAgent())
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	pair, err := h.auth.GoogleCallback(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, pair.RefreshCookie)
	response.Success(w, pair)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Missing refresh token")
		return
	}

	pair, err := h.auth.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, pair.RefreshCookie)
	response.Success(w, pair)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		h.auth.Logout(cookie.Value)
	}
	response.SuccessWithMessage(w, "Logged out", nil)
}
