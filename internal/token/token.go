package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hvrSSB04/ssb-backend/internal/models"
)

// Kinds mirror the two channel families.
const (
	KindBarber = "barber"
	KindUser   = "user"
)

// Claims is the verified identity a notification channel binds to.
type Claims struct {
	Kind string
	// Subject is the barber id for barber tokens, the customer email for
	// user tokens.
	Subject string
	// Name is the barber display name; empty on user tokens.
	Name string
}

func NewBarberToken(secret string, b *models.Barber) (string, error) {
	claims := jwt.MapClaims{
		"sub":  b.ID,
		"kind": KindBarber,
		"name": b.FullName(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func NewCustomerToken(secret, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"kind": KindUser,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func Parse(secret, tokenString string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, ok1 := mc["sub"].(string)
	kind, ok2 := mc["kind"].(string)
	if !ok1 || !ok2 {
		return nil, jwt.ErrTokenInvalidClaims
	}
	name, _ := mc["name"].(string)

	return &Claims{Kind: kind, Subject: sub, Name: name}, nil
}
