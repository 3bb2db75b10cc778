package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"brewshop/internal/domain"
	tokenrepo "brewshop/internal/repository/token"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// issueAttempts bounds retries on a token collision.
const issueAttempts = 3

// Service issues opaque bearer tokens, each bound to one storefront session.
// Tokens live in the repository, so a durable repository keeps sessions and
// their saved carts reachable across restarts.
type Service struct {
	tokens   tokenrepo.Repository
	ttl      time.Duration
	now      func() time.Time
	newToken func() (string, error)
}

func New(tokens tokenrepo.Repository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Service{
		tokens:   tokens,
		ttl:      ttl,
		now:      time.Now,
		newToken: randomToken,
	}
}

func (s *Service) Issue(ctx context.Context) (token, sessionID string, err error) {
	sessionID = uuid.NewString()
	for attempt := 0; attempt < issueAttempts; attempt++ {
		token, err = s.newToken()
		if err != nil {
			return "", "", fmt.Errorf("generate token: %w", err)
		}
		err = s.tokens.Create(ctx, tokenrepo.Token{
			Token:     token,
			SessionID: sessionID,
			ExpiresAt: s.now().Add(s.ttl),
		})
		if err == nil {
			return token, sessionID, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return "", "", err
		}
	}
	return "", "", fmt.Errorf("issue session token: %w", err)
}

// Lookup resolves token to its session ID. Expired tokens are deleted as they
// are seen.
func (s *Service) Lookup(ctx context.Context, token string) (string, error) {
	t, err := s.tokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if s.now().After(t.ExpiresAt) {
		if err := s.tokens.Delete(ctx, token); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
		return "", ErrInvalidToken
	}
	return t.SessionID, nil
}

// Prune removes every expired token and reports how many went.
func (s *Service) Prune(ctx context.Context) (int64, error) {
	return s.tokens.DeleteExpired(ctx, s.now())
}

func (s *Service) TTLSeconds() int {
	return int(s.ttl.Seconds())
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
