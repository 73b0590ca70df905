package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"ichipets/types"

	"github.com/redis/go-redis/v9"
)

// ProfileStore 保存访客上次下单的联系/地址信息，仅用于预填
type ProfileStore interface {
	Save(ctx context.Context, visitorID string, profile *types.CustomerProfile) error
	Load(ctx context.Context, visitorID string) (*types.CustomerProfile, error)
}

const profileTTL = 90 * 24 * time.Hour

type RedisProfileStore struct {
	Redis *redis.Client
}

var _ ProfileStore = (*RedisProfileStore)(nil)

func NewRedisProfileStore(rdb *redis.Client) *RedisProfileStore {
	return &RedisProfileStore{Redis: rdb}
}

func profileKey(visitorID string) string {
	return "ichipets:customer_info:" + visitorID
}

func (s *RedisProfileStore) Save(ctx context.Context, visitorID string, profile *types.CustomerProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, profileKey(visitorID), raw, profileTTL).Err()
}

func (s *RedisProfileStore) Load(ctx context.Context, visitorID string) (*types.CustomerProfile, error) {
	raw, err := s.Redis.Get(ctx, profileKey(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var profile types.CustomerProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// 兼容旧格式损坏的数据，当作未保存处理
		return nil, nil
	}
	return &profile, nil
}

// MemoryProfileStore 无 redis 时的进程内实现，测试也用它
type MemoryProfileStore struct {
	mu   sync.RWMutex
	data map[string]types.CustomerProfile
}

var _ ProfileStore = (*MemoryProfileStore)(nil)

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{data: make(map[string]types.CustomerProfile)}
}

func (s *MemoryProfileStore) Save(_ context.Context, visitorID string, profile *types.CustomerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[visitorID] = *profile
	return nil
}

func (s *MemoryProfileStore) Load(_ context.Context, visitorID string) (*types.CustomerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data[visitorID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
