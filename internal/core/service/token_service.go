package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

const (
	defaultAccessTTL  = 2 * time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenService issues and verifies the two token kinds. Access and refresh
// tokens are signed with distinct secrets so a leaked refresh secret cannot
// forge access tokens, and vice versa.
type TokenService struct {
	users         ports.UserRepository
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenService(users ports.UserRepository, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{
		users:         users,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// Issue encodes {id, role} into the access token and {id} into the refresh
// token, each with its own expiry and secret.
func (s *TokenService) Issue(user *domain.User) (ports.TokenPair, error) {
	access, err := s.signAccess(user.ID, user.Role)
	if err != nil {
		return ports.TokenPair{}, err
	}

	now := s.now()
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.ID,
		"iat": now.Unix(),
		"exp": now.Add(s.refreshTTL).Unix(),
	})
	signedRefresh, err := refresh.SignedString(s.refreshSecret)
	if err != nil {
		return ports.TokenPair{}, err
	}

	return ports.TokenPair{AccessToken: access, RefreshToken: signedRefresh}, nil
}

// VerifyAccess checks signature and expiry and returns the embedded id and
// role. The stored role is deliberately not consulted: an outstanding token
// keeps reporting the role it was issued with until refresh or expiry.
func (s *TokenService) VerifyAccess(token string) (string, string, error) {
	claims, err := s.parse(token, s.accessSecret)
	if err != nil {
		return "", "", domain.ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return "", "", domain.ErrInvalidToken
	}
	return id, role, nil
}

// Refresh verifies the refresh token and mints a new access token carrying
// the user's current stored role. This is the point at which a role change
// becomes visible to the token holder.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.parse(refreshToken, s.refreshSecret)
	if err != nil {
		return "", domain.ErrInvalidRefresh
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", domain.ErrInvalidRefresh
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	return s.signAccess(user.ID, user.Role)
}

func (s *TokenService) signAccess(id, role string) (string, error) {
	now := s.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	})
	return t.SignedString(s.accessSecret)
}

func (s *TokenService) parse(token string, secret []byte) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
