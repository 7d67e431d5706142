package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginLimiter conta falhas de login por e-mail dentro de uma janela
type LoginLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

func NewLoginLimiter(rdb *redis.Client, max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{rdb: rdb, max: max, window: window}
}

func loginKey(email string) string {
	return "login:fail:" + strings.ToLower(strings.TrimSpace(email))
}

// Allow retorna false quando o limite de falhas foi atingido.
// Erros do Redis não bloqueiam o login.
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	if l == nil {
		return true, nil
	}
	n, err := l.rdb.Get(ctx, loginKey(email)).Int()
	switch {
	case errors.Is(err, redis.Nil):
		return true, nil
	case err != nil:
		return true, err
	}
	return n < l.max, nil
}

// Fail registra uma falha; a janela começa na primeira falha
func (l *LoginLimiter) Fail(ctx context.Context, email string) error {
	if l == nil {
		return nil
	}
	key := loginKey(email)
	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		return l.rdb.Expire(ctx, key, l.window).Err()
	}
	return nil
}

func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	if l == nil {
		return nil
	}
	return l.rdb.Del(ctx, loginKey(email)).Err()
}
