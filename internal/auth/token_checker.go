package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymrank/internal/telemetry/tracing"
	"github.com/2beens/gymrank/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	verifiedKeyPrefix = "gymrank-verified-token-"
	DefaultTTL        = 8 * time.Hour
)

// Checker decides whether a request token grants write access.
type Checker interface {
	IsValid(ctx context.Context, token string) (bool, error)
}

var _ Checker = (*TokenChecker)(nil)

// TokenChecker validates API tokens against a bcrypt hash. Comparing with
// bcrypt is slow on purpose, so tokens that passed once are remembered in
// redis (by their sha256) for ttl.
type TokenChecker struct {
	secretHash  string
	ttl         time.Duration
	redisClient *redis.Client
}

func NewTokenChecker(secretHash string, ttl time.Duration, redisClient *redis.Client) *TokenChecker {
	return &TokenChecker{
		secretHash:  secretHash,
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *TokenChecker) IsValid(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.token.isValid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if token == "" || c.secretHash == "" {
		return false, nil
	}

	key := verifiedKey(token)
	if c.redisClient != nil {
		cached, err := c.redisClient.Get(ctx, key).Result()
		switch {
		case err == nil && cached == "1":
			span.SetAttributes(attribute.Bool("cached", true))
			return true, nil
		case err != nil && !errors.Is(err, redis.Nil):
			log.Errorf("token checker, get verified token: %s", err)
		}
	}

	if !pkg.CheckTokenHash(token, c.secretHash) {
		return false, nil
	}

	if c.redisClient != nil {
		if err := c.redisClient.Set(ctx, key, "1", c.ttl).Err(); err != nil {
			return true, fmt.Errorf("remember verified token: %w", err)
		}
	}

	return true, nil
}

func verifiedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return verifiedKeyPrefix + hex.EncodeToString(sum[:])
}
