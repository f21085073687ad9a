package cache

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymrank/internal/telemetry/tracing"
	"github.com/2beens/gymrank/pkg"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const redisKeyPrefix = "gymrank-cache-"

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, key string)
}

var _ Cache = (*ReportCache)(nil)

// ReportCache is a two level cache: an in-process freecache in front of
// redis, which is shared by every service instance. Both levels expire
// entries after ttl and hold gzipped values. A failing redis only degrades
// the cache to the local level.
type ReportCache struct {
	local       *freecache.Cache
	redisClient *redis.Client
	ttl         time.Duration
}

func NewReportCache(sizeMB int, ttl time.Duration, redisClient *redis.Client) *ReportCache {
	return &ReportCache{
		local:       freecache.NewCache(sizeMB * 1024 * 1024),
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.report.get")
	defer span.End()

	if compressed, err := c.local.Get([]byte(key)); err == nil {
		if value, err := pkg.Decompress(compressed); err == nil {
			span.SetAttributes(attribute.String("level", "local"))
			return value, true
		}
	}

	if c.redisClient == nil {
		return nil, false
	}

	compressed, err := c.redisClient.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("report cache, redis get [%s]: %s", key, err)
		}
		return nil, false
	}
	value, err := pkg.Decompress(compressed)
	if err != nil {
		log.Errorf("report cache, decompress [%s]: %s", key, err)
		return nil, false
	}

	span.SetAttributes(attribute.String("level", "redis"))
	c.setLocal(key, compressed)
	return value, true
}

func (c *ReportCache) Set(ctx context.Context, key string, value []byte) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.report.set")
	defer span.End()

	compressed, err := pkg.Compress(value)
	if err != nil {
		log.Errorf("report cache, compress [%s]: %s", key, err)
		return
	}

	c.setLocal(key, compressed)
	if c.redisClient == nil {
		return
	}
	if err := c.redisClient.Set(ctx, redisKeyPrefix+key, compressed, c.ttl).Err(); err != nil {
		log.Errorf("report cache, redis set [%s]: %s", key, err)
	}
}

func (c *ReportCache) Invalidate(ctx context.Context, key string) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.report.invalidate")
	defer span.End()

	c.local.Del([]byte(key))
	if c.redisClient == nil {
		return
	}
	if err := c.redisClient.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		log.Errorf("report cache, redis del [%s]: %s", key, err)
	}
}

func (c *ReportCache) setLocal(key string, compressed []byte) {
	if err := c.local.Set([]byte(key), compressed, int(c.ttl.Seconds())); err != nil {
		log.Warnf("report cache, local set [%s]: %s", key, err)
	}
}
