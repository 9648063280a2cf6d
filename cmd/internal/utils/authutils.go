package utils

import (
	"errors"
	"fmt"
	"reurb/cmd/internal/domain/entity"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs and validates the HS256 tokens handed out on login.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

type TokenData struct {
	UserID int
	Login  string
	Role   entity.Role
	Exp    int64
}

type claims struct {
	Login string      `json:"login"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

func (t *TokenIssuer) Issue(user *entity.User) (string, error) {
	now := t.now()
	c := &claims{
		Login: user.LoginName,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

// ValidateToken parses AND validates the signature locally.
// It returns the data if the token is authentic and unexpired.
func (t *TokenIssuer) ValidateToken(tokenString string) (*TokenData, error) {
	clean := sanitizeToken(tokenString)
	if clean == "" {
		return nil, errors.New("token is empty")
	}

	var c claims
	token, err := jwt.ParseWithClaims(clean, &c, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject %q: %w", c.Subject, err)
	}

	var exp int64
	if c.ExpiresAt != nil {
		exp = c.ExpiresAt.Unix()
	}

	return &TokenData{
		UserID: id,
		Login:  c.Login,
		Role:   c.Role,
		Exp:    exp,
	}, nil
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
}
