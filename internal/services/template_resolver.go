package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"report-service/internal/models"

	"github.com/redis/go-redis/v9"
)

const templatePathCachePrefix = "report:template_path:"

// templateRegistry is the authoritative source of template paths.
type templateRegistry interface {
	GetByKey(ctx context.Context, templateKey string) (*models.ReportTemplate, error)
}

// CachedTemplateResolver resolves template keys against the template
// registry, caching resolved relative paths in Redis. Cache failures are
// logged and fall through to the registry; they never fail a resolve.
type CachedTemplateResolver struct {
	registry templateRegistry
	cache    *redis.Client
	ttl      time.Duration
}

func NewCachedTemplateResolver(registry templateRegistry, cache *redis.Client, ttl time.Duration) *CachedTemplateResolver {
	return &CachedTemplateResolver{
		registry: registry,
		cache:    cache,
		ttl:      ttl,
	}
}

// Resolve returns the relative path registered for the template key. The
// returned path is treated as authoritative; no validation is performed.
func (r *CachedTemplateResolver) Resolve(ctx context.Context, key models.TemplateKey) (string, error) {
	cacheKey := templatePathCachePrefix + string(key)

	if r.cache != nil {
		cached, err := r.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Template path cache read failed, falling back to registry",
				"template_key", key,
				"error", err)
		}
	}

	template, err := r.registry.GetByKey(ctx, string(key))
	if err != nil {
		return "", err
	}
	if template == nil {
		return "", fmt.Errorf("no template registered for key %q", key)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, template.RelativePath, r.ttl).Err(); err != nil {
			slog.Warn("Template path cache write failed",
				"template_key", key,
				"error", err)
		}
	}

	return template.RelativePath, nil
}
