package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SetLookup reports a value as taken when it is a member of a Redis set.
// Values are stored and compared in their fmt.Sprint form.
type SetLookup struct {
	client redis.UniversalClient
	key    string
}

func NewSetLookup(client redis.UniversalClient, key string) (*SetLookup, error) {
	if key == "" {
		return nil, ErrEmptySetKey
	}
	return &SetLookup{client: client, key: key}, nil
}

// Key returns the set key the lookup queries.
func (l *SetLookup) Key() string {
	return l.key
}

func (l *SetLookup) Exists(ctx context.Context, value any) (bool, error) {
	ok, err := l.client.SIsMember(ctx, l.key, fmt.Sprint(value)).Result()
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return ok, nil
}

// Claim adds values to the set so later lookups report them as taken.
func (l *SetLookup) Claim(ctx context.Context, values ...any) error {
	if len(values) == 0 {
		return nil
	}
	members := make([]any, 0, len(values))
	for _, v := range values {
		members = append(members, fmt.Sprint(v))
	}
	if err := l.client.SAdd(ctx, l.key, members...).Err(); err != nil {
		return errors.Join(ErrLookupFailed, err)
	}
	return nil
}
