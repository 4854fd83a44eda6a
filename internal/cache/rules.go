package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/models"
)

const ruleTTL = 5 * time.Minute

// CachedRuleStore is a read-through cache over the rule store. Rules are
// read on every booking, written almost never. A nil redis client makes it
// a passthrough.
type CachedRuleStore struct {
	inner scheduling.RuleStore
	rdb   *redis.Client
}

func NewCachedRuleStore(inner scheduling.RuleStore, rdb *redis.Client) *CachedRuleStore {
	return &CachedRuleStore{inner: inner, rdb: rdb}
}

func ruleKey(name string) string {
	return "rule:" + name
}

func (c *CachedRuleStore) FindByName(ctx context.Context, name string) (*models.Rule, error) {
	if c.rdb != nil {
		if raw, err := c.rdb.Get(ctx, ruleKey(name)).Result(); err == nil {
			var rule models.Rule
			if json.Unmarshal([]byte(raw), &rule) == nil {
				return &rule, nil
			}
		}
	}

	rule, err := c.inner.FindByName(ctx, name)
	if err != nil || rule == nil {
		return rule, err
	}

	if c.rdb != nil {
		if raw, err := json.Marshal(rule); err == nil {
			c.rdb.Set(ctx, ruleKey(rule.Name), raw, ruleTTL)
		}
	}
	return rule, nil
}

func (c *CachedRuleStore) FindByID(ctx context.Context, id uint) (*models.Rule, error) {
	return c.inner.FindByID(ctx, id)
}

func (c *CachedRuleStore) FindAll(ctx context.Context) ([]models.Rule, error) {
	return c.inner.FindAll(ctx)
}

func (c *CachedRuleStore) Create(ctx context.Context, rule *models.Rule) error {
	if err := c.inner.Create(ctx, rule); err != nil {
		return err
	}
	c.invalidate(ctx, rule.Name)
	return nil
}

func (c *CachedRuleStore) Update(ctx context.Context, rule *models.Rule) error {
	if err := c.inner.Update(ctx, rule); err != nil {
		return err
	}
	c.invalidate(ctx, rule.Name)
	return nil
}

func (c *CachedRuleStore) Delete(ctx context.Context, id uint) error {
	rule, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if rule != nil {
		c.invalidate(ctx, rule.Name)
	}
	return nil
}

func (c *CachedRuleStore) invalidate(ctx context.Context, name string) {
	if c.rdb != nil {
		c.rdb.Del(ctx, ruleKey(name))
	}
}

var _ scheduling.RuleStore = (*CachedRuleStore)(nil)
