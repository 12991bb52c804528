package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	templateKeyPrefix   = "physio:template:"
	generationKeyPrefix = "physio:template-gen:"
)

// TemplateCache is a read-through cache in front of a TemplateSource. Redis
// failures degrade to the source; they never fail a read.
//
// Each provider has a generation counter. Invalidate bumps it, and a fill
// only writes when the counter still holds the value read before the source
// was queried, so a slow reader cannot re-cache a replaced template.
type TemplateCache struct {
	client *redis.Client
	source availability.TemplateSource
	ttl    time.Duration
}

func NewTemplateCache(client *redis.Client, source availability.TemplateSource, ttl time.Duration) *TemplateCache {
	return &TemplateCache{client: client, source: source, ttl: ttl}
}

func templateKey(providerID int64) string {
	return fmt.Sprintf("%s%d", templateKeyPrefix, providerID)
}

func generationKey(providerID int64) string {
	return fmt.Sprintf("%s%d", generationKeyPrefix, providerID)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (c *TemplateCache) generation(ctx context.Context, g getter, providerID int64) (string, error) {
	gen, err := g.Get(ctx, generationKey(providerID)).Result()
	if errs.Is(err, redis.Nil) {
		return "", nil
	}
	return gen, err
}

// WeeklyTemplate caches absent templates too, stored as JSON null.
func (c *TemplateCache) WeeklyTemplate(ctx context.Context, providerID int64) (*availability.WeeklyTemplate, error) {
	key := templateKey(providerID)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var tpl *availability.WeeklyTemplate
		if jsonErr := json.Unmarshal(raw, &tpl); jsonErr == nil {
			return tpl, nil
		}
		slog.Warn("discarding undecodable cached template", "provider_id", providerID)
	case errs.Is(err, redis.Nil):
	default:
		slog.Warn("template cache read failed", "provider_id", providerID, "error", err.Error())
	}

	gen, genErr := c.generation(ctx, c.client, providerID)

	tpl, err := c.source.WeeklyTemplate(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		return tpl, nil
	}

	payload, err := json.Marshal(tpl)
	if err != nil {
		return tpl, nil
	}
	if err := c.fill(ctx, providerID, gen, payload); err != nil {
		slog.Warn("template cache write failed", "provider_id", providerID, "error", err.Error())
	}
	return tpl, nil
}

// fill writes payload unless the generation moved since gen was read.
func (c *TemplateCache) fill(ctx context.Context, providerID int64, gen string, payload []byte) error {
	genKey := generationKey(providerID)
	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.generation(ctx, tx, providerID)
		if err != nil {
			return err
		}
		if current != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, templateKey(providerID), payload, c.ttl)
			return nil
		})
		return err
	}, genKey)
	if errs.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *TemplateCache) Invalidate(ctx context.Context, providerID int64) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(providerID))
		pipe.Del(ctx, templateKey(providerID))
		return nil
	})
	if err != nil {
		return errs.Wrapf(err, "invalidate template for provider %d", providerID)
	}
	return nil
}
