package locker

import "errors"

var (
	// ErrLockNotOwned возвращается при снятии блокировки, которая истекла или захвачена другим владельцем
	ErrLockNotOwned = errors.New("locker: lock not owned by this client")

	// ErrRedis возвращается при ошибках обращения к Redis
	ErrRedis = errors.New("locker: redis error")
)
