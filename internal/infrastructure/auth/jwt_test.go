package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/mockerp/internal/infrastructure/config"
)

func newTestJWTService(expiry time.Duration) *JWTService {
	return NewJWTService(config.AuthConfig{
		Secret:      "test-secret-key",
		TokenExpiry: expiry,
		Issuer:      "mockerp-test",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.Generate("test_user")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := svc.Validate(token.Value)
	require.NoError(t, err)
	assert.Equal(t, "test_user", claims.Username)
	assert.Equal(t, "test_user", claims.Subject)
	assert.Equal(t, "mockerp-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, err := svc.Generate("test_user")
	require.NoError(t, err)

	_, err = svc.Validate(token.Value)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	other := NewJWTService(config.AuthConfig{
		Secret:      "different-secret",
		TokenExpiry: time.Hour,
		Issuer:      "mockerp-test",
	})

	token, err := svc.Generate("test_user")
	require.NoError(t, err)

	_, err = other.Validate(token.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Validate("")
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	svc := newTestJWTService(30 * time.Minute)
	assert.Equal(t, 30*time.Minute, svc.TokenExpiry())
}
