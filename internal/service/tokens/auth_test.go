package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateUserJWT(t *testing.T) {
	key := []byte("super secret key")

	tokenString, genErr := GenerateUserJWT(42, time.Hour, key)
	require.NoError(t, genErr)

	token, valErr := ValidateUserJWT(tokenString, key)
	require.NoError(t, valErr)

	claims, ok := token.Claims.(*UserClaims)
	require.True(t, ok)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateUserJWT_Expired(t *testing.T) {
	key := []byte("super secret key")

	tokenString, genErr := GenerateUserJWT(42, -time.Minute, key)
	require.NoError(t, genErr)

	_, valErr := ValidateUserJWT(tokenString, key)
	assert.ErrorIs(t, valErr, ErrTokenExpired)
}

func TestValidateUserJWT_WrongKey(t *testing.T) {
	tokenString, genErr := GenerateUserJWT(42, time.Hour, []byte("super secret key"))
	require.NoError(t, genErr)

	_, valErr := ValidateUserJWT(tokenString, []byte("another key"))
	assert.Error(t, valErr)
}

// Токен без issuer, подписанный тем же ключом, не проходит валидацию.
func TestValidateUserJWT_ForeignIssuer(t *testing.T) {
	key := []byte("super secret key")

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		ID: 42,
	})
	tokenString, signErr := foreign.SignedString(key)
	require.NoError(t, signErr)

	_, valErr := ValidateUserJWT(tokenString, key)
	assert.Error(t, valErr)
}
