package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any username/password mismatch.
var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialVerifier checks an admin login attempt. Implementations decide
// where credentials live; nothing is baked into the service.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// EnvCredentials verifies a single admin identity against a bcrypt hash
// supplied through the environment.
type EnvCredentials struct {
	username     string
	passwordHash []byte
}

// NewEnvCredentials builds a verifier from ADMIN_* settings. When only a
// plaintext password is configured it is hashed once at startup so no
// plaintext sticks around in memory longer than necessary.
func NewEnvCredentials(username, password, passwordHash string) (*EnvCredentials, error) {
	if passwordHash == "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hashed)
	}
	return &EnvCredentials{username: username, passwordHash: []byte(passwordHash)}, nil
}

func (c *EnvCredentials) Verify(username, password string) bool {
	if username != c.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
}

type AuthService struct {
	verifier CredentialVerifier
	secret   string
	duration time.Duration
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(verifier CredentialVerifier, secret string, duration time.Duration) *AuthService {
	return &AuthService{verifier: verifier, secret: secret, duration: duration}
}

// Authenticate checks the credentials and returns a signed bearer token
func (s *AuthService) Authenticate(username, password string) (string, error) {
	if !s.verifier.Verify(username, password) {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(s.duration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
