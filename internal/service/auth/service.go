package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/user"
	"github.com/strivehr/perform-backend-go/internal/pkg/jwt"
	"github.com/strivehr/perform-backend-go/internal/pkg/oauth"
	"github.com/strivehr/perform-backend-go/internal/pkg/password"
)

// TokenPair is an issued access token plus the refresh cookie.
type TokenPair struct {
	AccessToken  string       `json:"access_token"`
	ExpiresAt    int64        `json:"expires_at"`
	RefreshCookie *http.Cookie `json:"-"`
	User         user.User    `json:"user"`
}

type Service struct {
	users     user.Repository
	employees employee.Repository
	jwt       jwt.Service
	google    oauth.GoogleService
}

func NewService(users user.Repository, employees employee.Repository, jwtService jwt.Service, google oauth.GoogleService) *Service {
	return &Service{
		users:     users,
		employees: employees,
		jwt:       jwtService,
		google:    google,
	}
}

// Login authenticates a console user by username and password.
func (s *Service) Login(ctx context.Context, username, plaintext string) (TokenPair, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return TokenPair{}, user.ErrInvalidCredentials
	}
	if !u.IsActive || u.PasswordHash == nil || !password.Verify(*u.PasswordHash, plaintext) {
		return TokenPair{}, user.ErrInvalidCredentials
	}
	return s.issue(u)
}

// PortalLogin authenticates an employee by employee code and password,
// the lightweight self-service credential.
func (s *Service) PortalLogin(ctx context.Context, employeeCode, plaintext string) (TokenPair, error) {
	emp, err := s.employees.GetByCode(ctx, employeeCode)
	if err != nil {
		return TokenPair{}, user.ErrInvalidCredentials
	}
	if !emp.HasLinkedAccount() {
		return TokenPair{}, user.ErrInvalidCredentials
	}

	u, err := s.users.GetByID(ctx, *emp.UserID)
	if err != nil {
		return TokenPair{}, user.ErrInvalidCredentials
	}
	if !u.IsActive || u.PasswordHash == nil || !password.Verify(*u.PasswordHash, plaintext) {
		return TokenPair{}, user.ErrInvalidCredentials
	}

	slog.Info("portal login", "employee_code", emp.EmployeeCode, "user_id", u.ID)
	return s.issue(u)
}

// GoogleRedirectURL starts the console Google sign-in flow.
func (s *Service) GoogleRedirectURL(userAgent string) string {
	state := s.google.GenerateState(userAgent)
	return s.google.RedirectURL(state)
}

// GoogleCallback finishes the Google sign-in: the Google account email
// must match an existing active console user.
func (s *Service) GoogleCallback(ctx context.Context, code string) (TokenPair, error) {
	token, err := s.google.VerifyToken(ctx, code)
	if err != nil {
		return TokenPair{}, fmt.Errorf("verify oauth token: %w", err)
	}
	info, err := s.google.VerifyUser(ctx, token)
	if err != nil {
		return TokenPair{}, fmt.Errorf("verify google user: %w", err)
	}
	if !info.VerifiedEmail {
		return TokenPair{}, user.ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, info.Email)
	if err != nil {
		return TokenPair{}, user.ErrInvalidCredentials
	}
	if !u.IsActive {
		return TokenPair{}, user.ErrInvalidCredentials
	}

	slog.Info("google sign-in", "user_id", u.ID)
	return s.issue(u)
}

// Refresh exchanges a valid refresh token for a new pair. The old token
// is revoked so each refresh token is single-use.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if s.jwt.IsTokenRevoked(refreshToken) {
		return TokenPair{}, user.ErrInvalidToken
	}
	userID, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, user.ErrInvalidToken
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return TokenPair{}, user.ErrInvalidToken
	}
	s.jwt.RevokeToken(refreshToken)
	return s.issue(u)
}

// Logout revokes the refresh token.
func (s *Service) Logout(refreshToken string) {
	s.jwt.RevokeToken(refreshToken)
}

func (s *Service) issue(u user.User) (TokenPair, error) {
	access, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Username, u.EmployeeID, u.Role)
	if err != nil {
		return TokenPair{}, fmt.Errorf("generate access token: %w", err)
	}
	refresh, refreshExpiresAt, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("generate refresh token: %w", err)
	}

	u.PasswordHash = nil
	return TokenPair{
		AccessToken:   access,
		ExpiresAt:     expiresAt,
		RefreshCookie: s.jwt.RefreshTokenCookie(refresh, refreshExpiresAt),
		User:          u,
	}, nil
}
