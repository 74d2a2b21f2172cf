package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in the access token.
const (
	RoleCustomer = "CUSTOMER"
	RoleWorker   = "WORKER"
	RoleAdmin    = "ADMIN"
)

var ErrInvalidToken = errors.New("invalid access token")

// Claims is the identity extracted from a verified access token.

type Claims struct {
	UserID string
	Role   string
	Email  string
	Nama   string
}

// TokenManager verifies HS256 access tokens issued by the identity service.
// This service only consumes tokens; issuing lives elsewhere.

type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

func (m *TokenManager) ParseAccess(token string) (Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}

	role, _ := mapClaims["role"].(string)
	email, _ := mapClaims["email"].(string)
	nama, _ := mapClaims["nama"].(string)

	return Claims{UserID: sub, Role: role, Email: email, Nama: nama}, nil
}

// IssueAccess signs an access token for the given claims. Kept for local
// tooling and tests; production tokens come from the identity service.
func (m *TokenManager) IssueAccess(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.UserID,
		"role":  claims.Role,
		"email": claims.Email,
		"nama":  claims.Nama,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})
	return token.SignedString(m.secret)
}
