package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"ichipets/config"
	"ichipets/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RefCache 共享参考数据（分类、店铺信息、banner）的读穿缓存。
// 有 redis 走 redis，没有就退化为进程内缓存；并发未命中合并为一次回源。
type RefCache struct {
	Redis *redis.Client
	TTL   time.Duration

	group singleflight.Group

	mu  sync.RWMutex
	mem map[string]memEntry
}

type memEntry struct {
	data    []byte
	expires time.Time
}

func NewRefCache(conf *config.Config, rdb *redis.Client) *RefCache {
	ttl := 60 * time.Second
	if conf.Catalog != nil && conf.Catalog.CacheTTLSeconds > 0 {
		ttl = time.Duration(conf.Catalog.CacheTTLSeconds) * time.Second
	}
	return &RefCache{
		Redis: rdb,
		TTL:   ttl,
		mem:   make(map[string]memEntry),
	}
}

func (r *RefCache) cacheKey(key string) string {
	return "ichipets:ref:" + key
}

func (r *RefCache) lookup(ctx context.Context, key string) ([]byte, bool) {
	if r.Redis != nil {
		raw, err := r.Redis.Get(ctx, r.cacheKey(key)).Bytes()
		if err == nil {
			return raw, true
		}
		if !errors.Is(err, redis.Nil) {
			log.L.Warn("ref cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	r.mu.RLock()
	entry, ok := r.mem[key]
	r.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.data, true
}

func (r *RefCache) store(ctx context.Context, key string, data []byte) {
	if r.Redis != nil {
		if err := r.Redis.Set(ctx, r.cacheKey(key), data, r.TTL).Err(); err != nil {
			log.L.Warn("ref cache write failed", zap.String("key", key), zap.Error(err))
		}
		return
	}

	r.mu.Lock()
	r.mem[key] = memEntry{data: data, expires: time.Now().Add(r.TTL)}
	r.mu.Unlock()
}

// GetJSON 命中直接反序列化，未命中回源并写回
func (r *RefCache) GetJSON(ctx context.Context, key string, out interface{}, load func() (interface{}, error)) error {
	if raw, ok := r.lookup(ctx, key); ok {
		if err := json.Unmarshal(raw, out); err == nil {
			return nil
		}
		// 缓存内容损坏就当未命中
	}

	raw, err, _ := r.group.Do(key, func() (interface{}, error) {
		fresh, err := load()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(fresh)
		if err != nil {
			return nil, err
		}
		r.store(ctx, key, data)
		return data, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(raw.([]byte), out)
}

// Invalidate 管理端改动后显式失效
func (r *RefCache) Invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if r.Redis != nil {
			if err := r.Redis.Del(ctx, r.cacheKey(key)).Err(); err != nil {
				log.L.Warn("ref cache invalidate failed", zap.String("key", key), zap.Error(err))
			}
			continue
		}
		r.mu.Lock()
		delete(r.mem, key)
		r.mu.Unlock()
	}
}
