package redis_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter 基于Redis的固定窗口尝试次数限制器
// 用于限制同一来源在窗口期内的登录尝试次数。
type RedisLimiter struct {
	client      *redis.Client
	maxAttempts int
	keyPrefix   string
	window      time.Duration
}

// NewRedisLimiter 创建基于Redis的尝试次数限制器
func NewRedisLimiter(client *redis.Client, maxAttempts int, keyPrefix string, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		keyPrefix:   keyPrefix,
		window:      window,
	}
}

// Allow 记录一次尝试并判断是否仍在限额内
// 使用Lua脚本保证 INCR 与 EXPIRE 的原子性：
// 1. 计数加一
// 2. 首次计数时设置窗口过期时间
// 3. 返回当前计数
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	script := redis.NewScript(
		`local count = redis.call('INCR', KEYS[1])
		if count == 1 then
			redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
		end
		return count`,
	)

	result, err := script.Run(ctx, rl.client, []string{rl.keyPrefix + key}, int(rl.window.Seconds())).Result()
	if err != nil {
		return false, fmt.Errorf("执行Lua脚本失败: %w", err)
	}

	return result.(int64) <= int64(rl.maxAttempts), nil
}

// Reset 清除计数，登录成功后调用
func (rl *RedisLimiter) Reset(ctx context.Context, key string) error {
	return rl.client.Del(ctx, rl.keyPrefix+key).Err()
}

// GetCurrent 获取当前窗口内的尝试次数
func (rl *RedisLimiter) GetCurrent(ctx context.Context, key string) (int, error) {
	current, err := rl.client.Get(ctx, rl.keyPrefix+key).Int()
	if err != nil && err != redis.Nil {
		return 0, fmt.Errorf("获取当前计数失败: %w", err)
	}
	if err == redis.Nil {
		return 0, nil
	}
	return current, nil
}
