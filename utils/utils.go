package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/shaanzeeeee/rate-punk/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 12
	defaultExpireHour = 72
)

func HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcryptCost)
	return string(hash), err
}

func CheckPassword(hash, pwd string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pwd)) == nil
}

func jwtSecret() []byte {
	if config.AppConfig != nil && config.AppConfig.Auth.JWTSecret != "" {
		return []byte(config.AppConfig.Auth.JWTSecret)
	}
	return []byte("dev-secret")
}

func expireHours() int {
	if config.AppConfig != nil && config.AppConfig.Auth.ExpireHours > 0 {
		return config.AppConfig.Auth.ExpireHours
	}
	return defaultExpireHour
}

// GenerateJWT signs a HS256 token carrying the username. The returned string
// already has the "Bearer " prefix.
func GenerateJWT(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"exp":      now.Add(time.Duration(expireHours()) * time.Hour).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	return "Bearer " + signed, err
}

// ParseJWT accepts tokens with or without the "Bearer " prefix and returns
// the username claim.
func ParseJWT(tk string) (string, error) {
	tk = strings.TrimSpace(tk)
	if low := strings.ToLower(tk); strings.HasPrefix(low, "bearer ") {
		tk = strings.TrimSpace(tk[7:])
	}
	if tk == "" {
		return "", errors.New("empty token")
	}
	token, err := jwt.Parse(tk, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", errors.New("username claim missing")
	}
	return username, nil
}
