package locker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// unlockScript удаляет ключ только если значение совпадает с токеном владельца
const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// Locker краткосрочные блокировки на Redis (SET NX PX)
type Locker struct {
	client RedisClient
	log    Logger
}

// New создает Locker
func New(client RedisClient, log Logger) *Locker {
	return &Locker{
		client: client,
		log:    log,
	}
}

// TryLock пытается захватить key на ttl
// Возвращает токен владельца; acquired = false, если ключ уже занят
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error) {
	token = uuid.NewString()

	acquired, err = l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		l.log.Error("TryLock: key=%s: %v", key, err)
		return "", false, fmt.Errorf("%w: TryLock - setnx: %v", ErrRedis, err)
	}

	if !acquired {
		l.log.Info("TryLock: key=%s is held by another owner", key)
		return "", false, nil
	}

	return token, true, nil
}

// Unlock снимает блокировку, если она принадлежит владельцу token
func (l *Locker) Unlock(ctx context.Context, key, token string) error {
	deleted, err := l.client.Eval(ctx, unlockScript, []string{key}, token).Int64()
	if err != nil {
		l.log.Error("Unlock: key=%s: %v", key, err)
		return fmt.Errorf("%w: Unlock - eval: %v", ErrRedis, err)
	}

	if deleted == 0 {
		l.log.Warn("Unlock: key=%s expired or owned by another client", key)
		return ErrLockNotOwned
	}

	return nil
}
