//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper issues tokens the way the identity provider does, signed with the test secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, identity uuid.UUID) string {
	t.Helper()
	token, err := h.Service(t).GenerateToken(identity)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, identity uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond)
	token, err := service.GenerateToken(identity)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

func (h *JWTHelper) CreateForeignToken(t *testing.T, identity uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-other", time.Hour)
	token, err := service.GenerateToken(identity)
	require.NoError(t, err)
	return token
}
