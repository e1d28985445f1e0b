package store

import (
	"context"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/minaorangina/cardtable/game"
	"github.com/pkg/errors"
)

const defaultRedisPrefix = "cardtable:"

// RedisStore keeps each snapshot under <prefix>session:<id> and indexes the
// ids of every variant in the set <prefix>variant:<name>.
type RedisStore struct {
	rdclient *redis.Client
	prefix   string
}

func NewRedisStore(addr, password string, db int, prefix string) *RedisStore {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreWithClient(rdclient, prefix)
}

func NewRedisStoreWithClient(rdclient *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{rdclient: rdclient, prefix: prefix}
}

func (r *RedisStore) Backend() string { return "redis" }

func (r *RedisStore) sessionKey(id string) string {
	return r.prefix + "session:" + id
}

func (r *RedisStore) variantKey(v game.Variant) string {
	return r.prefix + "variant:" + v.String()
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.rdclient.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.rdclient.Close()
}

func (r *RedisStore) Save(ctx context.Context, s game.Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	_, err = r.rdclient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.sessionKey(s.SessionID), data, 0)
		for _, v := range game.Variants() {
			if v != s.Variant {
				pipe.SRem(ctx, r.variantKey(v), s.SessionID)
			}
		}
		pipe.SAdd(ctx, r.variantKey(s.Variant), s.SessionID)
		return nil
	})
	return errors.Wrapf(err, "saving snapshot %s to redis", s.SessionID)
}

func (r *RedisStore) Load(ctx context.Context, sessionID string) (game.Snapshot, error) {
	data, err := r.rdclient.Get(ctx, r.sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return game.Snapshot{}, errors.Wrap(ErrNotFound, sessionID)
	} else if err != nil {
		return game.Snapshot{}, errors.Wrapf(err, "loading snapshot %s from redis", sessionID)
	}
	return Decode(data)
}

func (r *RedisStore) List(ctx context.Context, variant game.Variant) ([]string, error) {
	ids, err := r.rdclient.SMembers(ctx, r.variantKey(variant)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s sessions from redis", variant)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	var del *redis.IntCmd
	_, err := r.rdclient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.sessionKey(sessionID))
		for _, v := range game.Variants() {
			pipe.SRem(ctx, r.variantKey(v), sessionID)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "deleting snapshot %s from redis", sessionID)
	}
	if del.Val() == 0 {
		return errors.Wrap(ErrNotFound, sessionID)
	}
	return nil
}
