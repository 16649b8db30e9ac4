package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/service/cache/provider"
)

type impl struct {
	pool *redis.Pool
}

func NewRedis(pool *redis.Pool) provider.Provider {
	return &impl{pool}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	conn := im.pool.Get()
	defer conn.Close()

	if val, err := redis.Bytes(conn.Do("GET", key)); err != nil {
		if err == redis.ErrNil {
			return nil, time.Duration(0), provider.ErrNotFound
		}
		c.WithField("err", err).WithField("key", key).Error("redis GET failed")
		return nil, time.Duration(0), err
	} else if ttl, err := redis.Int(conn.Do("TTL", key)); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis TTL failed")
		return nil, time.Duration(0), err
	} else {
		return val, time.Duration(ttl) * time.Second, nil
	}
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	conn := im.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("SET", key, value, "PX", int64(ttl/time.Millisecond)); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis SET failed")
		return err
	}
	return nil
}

func (im *impl) Incr(c ctx.Ctx, key string, val int) (int64, time.Duration, error) {
	conn := im.pool.Get()
	defer conn.Close()

	// to perform same behavior with localecache
	if exists, err := redis.Bool(conn.Do("EXISTS", key)); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis EXISTS failed")
		return 0, time.Duration(0), err
	} else if !exists {
		return 0, time.Duration(0), provider.ErrNotFound
	} else if res, err := redis.Int64(conn.Do("INCRBY", key, val)); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis INCRBY failed")
		return 0, time.Duration(0), err
	} else if ttl, err := redis.Int(conn.Do("TTL", key)); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis TTL failed")
		return 0, time.Duration(0), err
	} else {
		return res, time.Duration(ttl) * time.Second, nil
	}
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	conn := im.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("DEL", key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis DEL failed")
		return err
	}
	return nil
}
