package identity

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/erp/mockerp/internal/domain/shared"
	"github.com/erp/mockerp/internal/infrastructure/auth"
	"github.com/erp/mockerp/internal/infrastructure/config"
)

// Error codes for authentication. The external interface maps these to
// SAP-compatible wire codes.
const (
	CodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	CodeInvalidToken       = "AUTH_INVALID_TOKEN"
	CodeInternal           = "AUTH_INTERNAL"
)

// AuthService authenticates users and issues session tokens. With no
// configured users any non-empty username/password pair is accepted,
// which is the behavior integration clients expect from a mock system;
// configured users switch the service to bcrypt-verified credentials.
type AuthService struct {
	tokens *auth.JWTService
	users  map[string]string // username -> bcrypt hash
	logger *zap.Logger
}

// NewAuthService creates an authentication service
func NewAuthService(tokens *auth.JWTService, cfg config.AuthConfig, logger *zap.Logger) *AuthService {
	var users map[string]string
	if len(cfg.Users) > 0 {
		users = make(map[string]string, len(cfg.Users))
		for _, u := range cfg.Users {
			users[u.Username] = u.PasswordHash
		}
	}
	return &AuthService{
		tokens: tokens,
		users:  users,
		logger: logger,
	}
}

// Login validates credentials and issues a session token
func (s *AuthService) Login(_ context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, shared.NewDomainError(CodeInvalidCredentials, "Invalid credentials")
	}

	if s.users != nil {
		hash, ok := s.users[req.Username]
		if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
			return nil, shared.NewDomainError(CodeInvalidCredentials, "Invalid credentials")
		}
	}

	token, err := s.tokens.Generate(req.Username)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, shared.NewDomainError(CodeInternal, "Authentication system error")
	}

	s.logger.Info("Authentication successful", zap.String("username", req.Username))

	return &LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// ValidateToken checks a session token and returns the authenticated username
func (s *AuthService) ValidateToken(_ context.Context, tokenString string) (string, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return "", shared.NewDomainError(CodeInvalidToken, "Invalid or expired token")
	}
	return claims.Username, nil
}
