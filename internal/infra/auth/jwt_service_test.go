package auth

import (
	"testing"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{Access: "test-secret-key"},
		Auth:      &config.AuthConfig{TokenTTL: ttl},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{TokenTTL: time.Hour},
	})
	assert.Error(t, err)
}

func TestNewJWTService_RequiresPositiveTTL(t *testing.T) {
	_, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "test-secret-key"},
		Auth:      &config.AuthConfig{TokenTTL: 0},
	})
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig(time.Hour))
	require.NoError(t, err)

	accountID := uuid.New()
	token, err := svc.Issue(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig(time.Millisecond))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig(time.Hour))
	require.NoError(t, err)

	verifier, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "another-secret-key"},
		Auth:      &config.AuthConfig{TokenTTL: time.Hour},
	})
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, service.ErrSignatureInvalid)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig(time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, service.ErrSignatureInvalid)
	}
}

func TestJWTService_Validate_TamperedPayload(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, service.ErrSignatureInvalid)
}
