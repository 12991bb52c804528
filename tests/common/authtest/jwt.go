//go:build unit || e2e

package authtest

import (
	"strconv"
	"testing"
	"time"

	"physio-scheduler/internal/domain/actor"
	"physio-scheduler/internal/pkg/config"
	"physio-scheduler/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens shaped like the external auth service's.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, a actor.Actor) string {
	t.Helper()
	return h.sign(t, a, time.Now().Add(time.Hour))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, a actor.Actor) string {
	t.Helper()
	return h.sign(t, a, time.Now().Add(-time.Minute))
}

func (h *JWTHelper) sign(t *testing.T, a actor.Actor, exp time.Time) string {
	t.Helper()
	token, err := h.service.Sign(jwt.Claims{
		Role: a.Role.String(),
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   strconv.FormatInt(a.ID, 10),
			ExpiresAt: gojwt.NewNumericDate(exp),
		},
	})
	require.NoError(t, err)
	return token
}
