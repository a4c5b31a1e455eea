package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

var ErrNotAcquired = errors.New("lock not acquired")

type Options struct {
	TTL          time.Duration
	WaitTimeout  time.Duration
	PollInterval time.Duration
}

func (o *Options) defaults() {
	if o.TTL <= 0 {
		o.TTL = 30 * time.Second
	}
	if o.WaitTimeout <= 0 {
		o.WaitTimeout = 10 * time.Second
	}
	if o.PollInterval <= 0 {
		o.PollInterval = 50 * time.Millisecond
	}
}

// RedisLocker is a SET NX lock shared by every instance of the service.
// The value is a random token so only the holder can release it.
type RedisLocker struct {
	client *redis.Client
	script *redis.Script
	opts   Options
}

func NewRedisLocker(client *redis.Client, opts Options) *RedisLocker {
	opts.defaults()
	return &RedisLocker{
		client: client,
		script: redis.NewScript(releaseScript),
		opts:   opts,
	}
}

// Acquire blocks until key is held, ctx is done or the wait timeout passes.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	if key == "" {
		return nil, errors.New("lock key is empty")
	}
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, l.opts.WaitTimeout)
	defer cancel()

	ticker := time.NewTicker(l.opts.PollInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.opts.TTL).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			return l.releaser(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", ErrNotAcquired, key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) releaser(key, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := l.script.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
				zap.L().Error("can't release lock", zap.String("key", key), zap.Error(err))
			}
		})
	}
}

// LocalLocker serialises callers within one process. It backs single
// instance deployments that run without Redis.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]chan struct{}
	opts Options
}

func NewLocalLocker(opts Options) *LocalLocker {
	opts.defaults()
	return &LocalLocker{
		held: make(map[string]chan struct{}),
		opts: opts,
	}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, l.opts.WaitTimeout)
	defer cancel()

	for {
		l.mu.Lock()
		wait, busy := l.held[key]
		if !busy {
			done := make(chan struct{})
			l.held[key] = done
			l.mu.Unlock()

			var once sync.Once
			return func() {
				once.Do(func() {
					l.mu.Lock()
					delete(l.held, key)
					l.mu.Unlock()
					close(done)
				})
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", ErrNotAcquired, key, ctx.Err())
		case <-wait:
		}
	}
}
