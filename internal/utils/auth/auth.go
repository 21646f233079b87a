package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/talx-hub/gopher-accounts/internal/serviceerrs"
)

const (
	TokenExpire = 3 * time.Hour
	CookieName  = "jwt-token"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

func buildJWTString(id int64, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpire)),
			},
			UserID: id,
		},
	)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("JWT signing: %w", err)
	}
	return tokenString, nil
}

func Authenticate(id int64, secret []byte) (http.Cookie, error) {
	jwtString, err := buildJWTString(id, secret)
	if err != nil {
		return http.Cookie{}, fmt.Errorf("authentication failed: %w", err)
	}
	return http.Cookie{
		Name:     CookieName,
		Value:    jwtString,
		Path:     "/",
		MaxAge:   int(TokenExpire.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

func CheckToken(tokenString string, secret []byte) (Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, serviceerrs.ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("failed to parse token %w", err)
	}

	return *claims, nil
}
