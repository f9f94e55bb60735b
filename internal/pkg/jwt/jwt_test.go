package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, "customer")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).GenerateToken(42, "admin")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	token, err := New("test-secret", -time.Minute).GenerateToken(42, "customer")
	require.NoError(t, err)

	_, err = New("test-secret", -time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := New("test-secret", time.Hour).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongAlgorithm(t *testing.T) {
	claims := Claims{
		UserID: 42,
		Role:   "customer",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = New("test-secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_ForeignIssuer(t *testing.T) {
	claims := Claims{
		UserID: 42,
		Role:   "customer",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = New("test-secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
