package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pasetoKey = "0123456789abcdef0123456789abcdef"

func TestTokenServices_RoundTrip(t *testing.T) {
	jwtSvc, err := NewJWTService([]byte("secret"))
	require.NoError(t, err)
	pasetoSvc, err := NewPasetoService([]byte(pasetoKey))
	require.NoError(t, err)

	services := map[string]TokenService{"jwt": jwtSvc, "paseto": pasetoSvc}
	for name, svc := range services {
		t.Run(name, func(t *testing.T) {
			token, err := svc.CreateToken("ada@example.com", time.Hour)
			require.NoError(t, err)

			claims, err := svc.VerifyToken(token)
			require.NoError(t, err)
			assert.Equal(t, "ada@example.com", claims.Email)
			assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
		})
	}
}

func TestTokenServices_Expired(t *testing.T) {
	jwtSvc, err := NewJWTService([]byte("secret"))
	require.NoError(t, err)

	token, err := jwtSvc.CreateToken("ada@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = jwtSvc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RejectsForeignSecretAndAlg(t *testing.T) {
	svc, err := NewJWTService([]byte("secret"))
	require.NoError(t, err)
	other, err := NewJWTService([]byte("other"))
	require.NoError(t, err)

	token, err := other.CreateToken("ada@example.com", time.Hour)
	require.NoError(t, err)
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "ada@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.VerifyToken(none)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasetoService_KeyLength(t *testing.T) {
	_, err := NewPasetoService([]byte("short"))
	assert.ErrorContains(t, err, "32 bytes")
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	_, err := NewJWTService(nil)
	assert.Error(t, err)
}
