package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/o1egl/paseto"

	"video-sharing/models"
)

var (
	ErrInvalidSigningKey = errors.New("invalid signing key")
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token expired")
)

type Payload struct {
	ID       uuid.UUID `json:"id"`
	IssuedAt time.Time `json:"issued_at"`
	ExpireAt time.Time `json:"expire_at"`
}

func (p Payload) valid(now time.Time) bool {
	return p.ExpireAt.After(now)
}

func NewPayload(id uuid.UUID) Payload {
	return Payload{
		ID:       id,
		IssuedAt: time.Now(),
	}
}

type TokenManager interface {
	CreateToken(p Payload) (string, error)
	VerifyToken(token string) (Payload, error)
}

type tokenManager struct {
	key    string
	paseto *paseto.V2
	dur    time.Duration
}

// NewTokenManager returns a PASETO v2 local token manager. key must be 32 bytes.
func NewTokenManager(key string, duration time.Duration) TokenManager {
	return &tokenManager{
		key:    key,
		paseto: paseto.NewV2(),
		dur:    duration,
	}
}

func (tm tokenManager) CreateToken(p Payload) (string, error) {
	p.ExpireAt = p.IssuedAt.Add(tm.dur)
	if len(tm.key) != 32 {
		return "", models.Internal("failed to create token",
			errors.Join(ErrInvalidSigningKey, fmt.Errorf("bad key length %d", len(tm.key))))
	}
	token, err := tm.paseto.Encrypt([]byte(tm.key), p, nil)
	if err != nil {
		return "", models.Internal("failed to create token", fmt.Errorf("failed to create token: %w", err))
	}
	return token, nil
}

func (tm tokenManager) VerifyToken(token string) (Payload, error) {
	payload := &Payload{}

	if err := tm.paseto.Decrypt(token, []byte(tm.key), payload, nil); err != nil {
		return Payload{}, models.Unauthorized("invalid access token",
			errors.Join(ErrInvalidToken, err))
	}
	if !payload.valid(time.Now()) {
		return Payload{}, models.Unauthorized("access token expired", ErrExpiredToken)
	}

	return *payload, nil
}
