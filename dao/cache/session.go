package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

var ProviderSet = wire.NewSet(NewSessionStorage)

// SessionStorage keeps the refresh token currently issued to each user.
// Only a digest is stored; logging in again replaces the previous session.
type SessionStorage struct {
	redis *redis.Client
}

func NewSessionStorage(rds *redis.Client) *SessionStorage {
	return &SessionStorage{rds}
}

// Set 保存刷新令牌
func (s *SessionStorage) Set(ctx context.Context, uid int64, refreshToken string, ttl time.Duration) error {
	return s.redis.Set(ctx, s.name(uid), digest(refreshToken), ttl).Err()
}

// consumeScript deletes the session only when it still holds the presented digest.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Consume atomically spends refreshToken. It reports true to exactly one
// caller while refreshToken is the live session of uid.
func (s *SessionStorage) Consume(ctx context.Context, uid int64, refreshToken string) (bool, error) {
	n, err := consumeScript.Run(ctx, s.redis, []string{s.name(uid)}, digest(refreshToken)).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Del 删除会话
func (s *SessionStorage) Del(ctx context.Context, uid int64) error {
	return s.redis.Del(ctx, s.name(uid)).Err()
}

func (s *SessionStorage) name(uid int64) string {
	return fmt.Sprintf("auth:refresh:%d", uid)
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
