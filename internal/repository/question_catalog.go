package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"teateach_backend/internal/model"
	"teateach_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const catalogCacheKey = "teateach:questions:all"

// QuestionSource 提供题库全量数据
type QuestionSource interface {
	FindAll() ([]model.Question, error)
}

// CachedQuestionCatalog 题库快照访问器，在 redis 中缓存全量题目。
// Redis 为空或 TTL<=0 时直接读取数据源；redis 出错时回退到数据源。
type CachedQuestionCatalog struct {
	Source QuestionSource
	Redis  redis.UniversalClient
	ttl    atomic.Int64
}

func NewCachedQuestionCatalog(source QuestionSource, rdb redis.UniversalClient, ttl time.Duration) *CachedQuestionCatalog {
	c := &CachedQuestionCatalog{Source: source, Redis: rdb}
	c.SetTTL(ttl)
	return c
}

// SetTTL 支持配置热更新
func (c *CachedQuestionCatalog) SetTTL(ttl time.Duration) {
	c.ttl.Store(int64(ttl))
}

func (c *CachedQuestionCatalog) TTL() time.Duration {
	return time.Duration(c.ttl.Load())
}

func (c *CachedQuestionCatalog) cacheEnabled() bool {
	return c.Redis != nil && c.TTL() > 0
}

// FetchAll 返回题库快照，每次调用都是独立的切片
func (c *CachedQuestionCatalog) FetchAll(ctx context.Context) ([]model.Question, error) {
	if c.cacheEnabled() {
		data, err := c.Redis.Get(ctx, catalogCacheKey).Bytes()
		switch {
		case err == nil:
			var qs []model.Question
			uerr := json.Unmarshal(data, &qs)
			if uerr == nil {
				return qs, nil
			}
			logger.Log.Warn("题库缓存数据损坏，回源读取", zap.Error(uerr))
		case errors.Is(err, redis.Nil):
		default:
			logger.Log.Warn("读取题库缓存失败，回源读取", zap.Error(err))
		}
	}

	qs, err := c.Source.FindAll()
	if err != nil {
		return nil, err
	}

	if c.cacheEnabled() {
		data, err := json.Marshal(qs)
		if err == nil {
			err = c.Redis.Set(ctx, catalogCacheKey, data, c.TTL()).Err()
		}
		if err != nil {
			logger.Log.Warn("写入题库缓存失败", zap.Error(err))
		}
	}
	return qs, nil
}

// Invalidate 题目增删改后清除快照
func (c *CachedQuestionCatalog) Invalidate(ctx context.Context) error {
	if c.Redis == nil {
		return nil
	}
	return c.Redis.Del(ctx, catalogCacheKey).Err()
}
