package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/targetgroup/backend/internal/model"
)

const (
	redisSessionPrefix     = "tg:session:"
	redisUserSessionPrefix = "tg:user_sessions:"
)

// RedisSessionRepository は Redis にセッションを保存する SessionRepository 実装。
// キーの TTL を有効期限に合わせるため、期限切れのセッションは Redis 側で消える。
type RedisSessionRepository struct {
	client redis.Cmdable
}

// NewRedisSessionRepository は RedisSessionRepository を生成する
func NewRedisSessionRepository(client redis.Cmdable) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

var _ SessionRepository = (*RedisSessionRepository)(nil)

// NewRedisClient は Redis クライアントを生成し疎通を確認する
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}
	return client, nil
}

func (r *RedisSessionRepository) Create(ctx context.Context, s *model.Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return errors.New("redis: session already expired")
	}
	data, err := json.Marshal(redisSession{UserID: s.UserID, CreatedAt: s.CreatedAt, ExpiresAt: s.ExpiresAt})
	if err != nil {
		return err
	}
	userKey := redisUserSessionPrefix + s.UserID
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisSessionPrefix+s.Token, data, ttl)
		pipe.SAdd(ctx, userKey, s.Token)
		pipe.Expire(ctx, userKey, ttl)
		return nil
	})
	return err
}

func (r *RedisSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	data, err := r.client.Get(ctx, redisSessionPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var rs redisSession
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("redis: decode session: %w", err)
	}
	return &model.Session{Token: token, UserID: rs.UserID, CreatedAt: rs.CreatedAt, ExpiresAt: rs.ExpiresAt}, nil
}

func (r *RedisSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	s, err := r.FindByToken(ctx, token)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, redisSessionPrefix+token)
		pipe.SRem(ctx, redisUserSessionPrefix+s.UserID, token)
		return nil
	})
	return err
}

func (r *RedisSessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	userKey := redisUserSessionPrefix + userID
	tokens, err := r.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		keys = append(keys, redisSessionPrefix+t)
	}
	keys = append(keys, userKey)
	return r.client.Del(ctx, keys...).Err()
}

type redisSession struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
