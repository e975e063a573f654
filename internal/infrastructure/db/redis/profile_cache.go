package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
)

// profileTTL matches the session cookie max-age: a snapshot outliving its
// cookie is unreachable anyway.
const profileTTL = 7 * 24 * time.Hour

// Profile cache key prefixes, one per principal kind. The names mirror the
// frontend's localStorage keys for compatibility with its snapshots.
const (
	userDataPrefix  = "userData"
	adminDataPrefix = "adminData"
)

// ProfileCache stores JSON-serialized principal snapshots keyed by session
// token. Every operation is defensive: storage failures are logged and
// degrade to "no profile found" rather than propagating, so the guard
// always gets a well-defined (possibly negative) answer.
type ProfileCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewProfileCache(client *redis.Client, log zerolog.Logger) *ProfileCache {
	return &ProfileCache{client: client, log: log}
}

// Save mirrors a principal snapshot under its token. Failures are logged
// and swallowed; the cookie and session registry still carry the session.
func (p *ProfileCache) Save(ctx context.Context, kind domain.Kind, token string, principal *domain.Principal) {
	if token == "" || principal == nil {
		return
	}

	raw, err := json.Marshal(principal)
	if err != nil {
		p.log.Error().Err(err).Str("kind", string(kind)).Msg("profile snapshot marshal failed")
		return
	}

	if err := p.client.Set(ctx, p.key(kind, token), raw, profileTTL).Err(); err != nil {
		p.log.Error().Err(err).Str("kind", string(kind)).Msg("profile snapshot write failed")
	}
}

// Get returns the cached snapshot for a token, or nil when absent, expired,
// corrupt, or when the cache is unreachable.
func (p *ProfileCache) Get(ctx context.Context, kind domain.Kind, token string) *domain.Principal {
	if token == "" {
		return nil
	}

	raw, err := p.client.Get(ctx, p.key(kind, token)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.log.Warn().Err(err).Str("kind", string(kind)).Msg("profile snapshot read failed")
		}
		return nil
	}

	var principal domain.Principal
	if err := json.Unmarshal(raw, &principal); err != nil {
		p.log.Warn().Err(err).Str("kind", string(kind)).Msg("profile snapshot corrupt")
		return nil
	}
	return &principal
}

// Clear deletes the snapshot for a token. Failures are logged only: the
// entry expires with its TTL regardless.
func (p *ProfileCache) Clear(ctx context.Context, kind domain.Kind, token string) {
	if token == "" {
		return
	}
	if err := p.client.Del(ctx, p.key(kind, token)).Err(); err != nil {
		p.log.Warn().Err(err).Str("kind", string(kind)).Msg("profile snapshot delete failed")
	}
}

func (p *ProfileCache) key(kind domain.Kind, token string) string {
	prefix := userDataPrefix
	if kind == domain.KindAdmin {
		prefix = adminDataPrefix
	}
	return prefix + ":" + token
}
