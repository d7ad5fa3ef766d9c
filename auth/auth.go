package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const CookieName = "auth_token"

var ErrInvalidCredentials = errors.New("invalid username or password")

// CustomClaims are the claims besides the registered ones carried by our tokens.
type CustomClaims struct {
	Username string `json:"username"`
}

func (c *CustomClaims) Validate(context.Context) error {
	if c.Username == "" {
		return errors.New("token has no username")
	}
	return nil
}

type tokenClaims struct {
	CustomClaims
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 tokens for one issuer and audience.
type Tokens struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokens(secret, issuer, audience string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// CreateToken returns a signed token for the user and its expiry.
func (t *Tokens) CreateToken(userID uint, username string) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		CustomClaims: CustomClaims{Username: username},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// Validator verifies tokens issued by CreateToken.
func (t *Tokens) Validator() (*validator.Validator, error) {
	keyFunc := func(context.Context) (interface{}, error) {
		return t.secret, nil
	}

	v, err := validator.New(
		keyFunc,
		validator.HS256,
		t.issuer,
		[]string{t.audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &CustomClaims{}
		}),
		validator.WithAllowedClockSkew(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up jwt validator: %w", err)
	}
	return v, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword returns ErrInvalidCredentials on any mismatch.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
