package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/auth"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	pkgauth "github.com/yigit/courseadmin/internal/pkg/auth"
	"github.com/yigit/courseadmin/internal/pkg/logger"
)

// Login messages
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgLoginFailed        = "Something went wrong."
)

// UserRepository is the user lookup used by AuthService
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenIssuer signs and verifies session tokens
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, time.Time, error)
	ValidateToken(token string) (*pkgauth.Claims, error)
}

// LoginResult is a successful sign-in
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Session   *auth.Session
	Redirect  string
}

// AuthService signs users in and resolves sessions from tokens
type AuthService struct {
	users  UserRepository
	tokens TokenIssuer
	log    zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		log:    logger.Component("auth_service"),
	}
}

// Login checks the credentials and issues a session token. Unknown emails and wrong passwords
// both yield apperrors.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password, callbackURL string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !pkgauth.CheckPassword(user.Password, password) {
		s.log.Info().Str("email", email).Msg("Rejected sign-in with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	session := &auth.Session{UserID: user.ID.String(), Email: user.Email, Admin: user.Admin}
	s.log.Info().Str("userID", session.UserID).Bool("admin", session.Admin).Msg("User signed in")
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Session:   session,
		Redirect:  LandingPath(session, callbackURL),
	}, nil
}

// Session resolves a token into a session. Any invalid or expired token is anonymous.
func (s *AuthService) Session(token string) *auth.Session {
	if token == "" {
		return nil
	}
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("Ignoring unusable session token")
		return nil
	}
	return &auth.Session{UserID: claims.UserID, Email: claims.Email, Admin: claims.Admin}
}

// LandingPath picks where a freshly signed-in user goes: the callback when it is a local
// path the gate lets them into, otherwise their own area.
func LandingPath(session *auth.Session, callbackURL string) string {
	if target, ok := localPath(callbackURL); ok {
		if auth.Authorize(session, pathOnly(target)).Kind == auth.Allow {
			return target
		}
	}
	return session.Home()
}

func localPath(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(raw, "//") {
		return "", false
	}
	return u.RequestURI(), true
}

func pathOnly(target string) string {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		return target[:i]
	}
	return target
}
