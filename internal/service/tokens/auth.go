package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issuer зашивается в каждый выданный токен и проверяется при валидации,
// чужие HS256 токены, подписанные тем же ключом, не принимаются.
const issuer = "tdmmail"

// UserClaims содержит внешний ID юзера из сервиса учета.
type UserClaims struct {
	jwt.RegisteredClaims
	ID int64 `json:"uid"`
}

func GenerateUserJWT(id int64, expire time.Duration, key []byte) (string, error) {
	now := time.Now()
	userClaims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
		ID: id,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, userClaims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %s", err.Error())
	}
	return tokenString, nil
}

func ValidateUserJWT(tokenString string, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, new(UserClaims), func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("validating user jwt token: %w", err)
	}

	if _, ok := token.Claims.(*UserClaims); !ok {
		return nil, errors.New("invalid claims")
	}
	return token, nil
}
