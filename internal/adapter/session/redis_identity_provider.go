// Package session adapts the external auth collaborator: customer
// sessions live in Redis as hashes keyed by the session token, written
// by the auth service. This side only reads them, to prefill drafts.
package session

import (
	"context"
	"errors"

	"webatelier/internal/domain/entities"
	"webatelier/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

var ErrSessionTokenUnknown = errors.New("session token unknown or expired")

type RedisIdentityProvider struct {
	rdb *redis.Client
}

var _ interfaces.IIdentityProvider = (*RedisIdentityProvider)(nil)

func NewRedisIdentityProvider(rdb *redis.Client) *RedisIdentityProvider {
	return &RedisIdentityProvider{rdb: rdb}
}

// Resolve reads the session hash for the token. Fields follow the auth
// service's schema: name, surname, email.
func (p *RedisIdentityProvider) Resolve(ctx context.Context, token string) (entities.Identity, error) {
	fields, err := p.rdb.HGetAll(ctx, token).Result()
	if err != nil {
		return entities.Identity{}, err
	}
	if len(fields) == 0 {
		return entities.Identity{}, ErrSessionTokenUnknown
	}
	return entities.Identity{
		Name:    fields["name"],
		Surname: fields["surname"],
		Email:   fields["email"],
	}, nil
}
